// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile : read file
func ReadFile(file string) ([]byte, error) {
	fileCont, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("Could not read file %s, err %s", file, err)
	}

	return fileCont, nil
}

// CheckFileIsExist : check whether the file exists or not
func CheckFileIsExist(filename string) bool {
	var exist = true
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		exist = false
	}
	return exist
}

// MakeDir : 创建文件所在的目录
func MakeDir(file string) error {
	return os.MkdirAll(filepath.Dir(file), 0755)
}

// WriteStringToFile : write content to file, 文件已经存在时覆盖
func WriteStringToFile(file, content string, perm os.FileMode) (writeLen int, err error) {
	if err = MakeDir(file); err != nil {
		return
	}
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	writeLen, err = w.WriteString(content)
	if err != nil {
		return
	}
	err = w.Flush()
	return
}
