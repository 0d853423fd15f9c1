/*
 * Copyright 2026 The Hoard Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package listener

import (
	"net"
	"testing"
)

func TestNewListener(t *testing.T) {
	l, err := NewListener("127.0.0.1", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if _, ok := l.Addr().(*net.TCPAddr); !ok {
		t.Errorf("unexpected address type %T", l.Addr())
	}
}

func TestNewListenerWithConnectionLimit(t *testing.T) {
	l, err := NewListener("127.0.0.1", 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
}

func TestNewListenerFailure(t *testing.T) {
	if _, err := NewListener("256.256.256.256", 0, 0); err == nil {
		t.Error("expected error for invalid address")
	}
}

func TestListenerAcceptAndClose(t *testing.T) {
	l, err := NewListener("127.0.0.1", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	done := make(chan error, 1)
	go func() {
		c, err := l.Accept()
		if err != nil {
			done <- err
			return
		}
		done <- c.Close()
	}()
	c, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	c.Close()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}
