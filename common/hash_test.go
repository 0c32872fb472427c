// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	b, err = FromHex("0X102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)
	_, err = FromHex("zz")
	assert.Error(t, err)
}

func TestConcat(t *testing.T) {
	assert.Equal(t, []byte("coin-flip"), Concat([]byte("coin"), nil, []byte("-flip")))
	assert.Len(t, Concat(), 0)
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1}
	dst := CopyBytes(src)
	dst[0] = 2
	assert.Equal(t, byte(1), src[0])
}

func TestHashes(t *testing.T) {
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, Sha256(Sha256([]byte("abc"))), sum[:])
	assert.Len(t, Rimp160AfterSha256([]byte("abc")), 20)
}
