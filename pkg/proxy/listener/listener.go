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

// Package listener provides the proxy's frontend net.Listener with
// connection observability and an optional concurrent-connection limit
package listener

import (
	"fmt"
	"net"

	"golang.org/x/net/netutil"

	"github.com/hoardcache/hoard/pkg/observability/metrics"
)

// Listener is the proxy's net.Listener implementation
type Listener struct {
	net.Listener
}

type observedConnection struct {
	net.Conn
}

func (o *observedConnection) Close() error {
	err := o.Conn.Close()
	metrics.ProxyActiveConnections.Dec()
	metrics.ProxyConnectionClosed.Inc()
	return err
}

// Accept implements net.Listener.Accept
func (l *Listener) Accept() (net.Conn, error) {
	metrics.ProxyConnectionRequested.Inc()
	c, err := l.Listener.Accept()
	if err != nil {
		metrics.ProxyConnectionFailed.Inc()
		return c, err
	}
	metrics.ProxyActiveConnections.Inc()
	metrics.ProxyConnectionAccepted.Inc()
	return &observedConnection{c}, nil
}

// NewListener binds the provided address and port and returns an observed
// Listener. When connectionsLimit is positive the listener accepts at most
// that many concurrent connections.
func NewListener(address string, port, connectionsLimit int) (net.Listener, error) {
	l, err := net.Listen("tcp", fmt.Sprintf("%s:%d", address, port))
	if err != nil {
		return nil, err
	}
	if connectionsLimit > 0 {
		l = netutil.LimitListener(l, connectionsLimit)
	}
	return &Listener{Listener: l}, nil
}
