// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"errors"
	"testing"

	"github.com/33cn/coinflip/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginManager(t *testing.T) {
	var gotSub []byte
	Register(&PluginBase{
		Name:     "demo-plugin",
		ExecName: "demo",
		Exec: func(name string, cfg *types.Config, sub []byte) error {
			gotSub = sub
			return nil
		},
		Cmd: func() *cobra.Command { return &cobra.Command{Use: "demo"} },
	})
	assert.Panics(t, func() { Register(&PluginBase{Name: "demo-plugin"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.True(t, HasExec("demo"))
	assert.False(t, HasExec("nosuch"))

	require.NoError(t, InitExec(&types.Config{}, map[string][]byte{"demo": []byte(`{"a":1}`)}))
	assert.Equal(t, []byte(`{"a":1}`), gotSub)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	assert.Len(t, root.Commands(), 1)
}

func TestInitExecError(t *testing.T) {
	p := &PluginBase{
		Name:     "bad",
		ExecName: "bad",
		Exec: func(name string, cfg *types.Config, sub []byte) error {
			return errors.New("bad config")
		},
	}
	err := p.InitExec(nil, nil)
	assert.EqualError(t, err, "bad config")
	assert.NoError(t, (&PluginBase{}).InitExec(nil, nil))
}
