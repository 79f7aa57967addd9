// Package client is the Go client of the VersionTable server.
//
//	conn, err := client.Dial("127.0.0.1:9443")
//	...
//	defer conn.Close()
//	_, err = conn.Admin().CreateTable(ctx, "users", client.Family{Name: "info", MaxVersions: 10})
//	err = conn.Table("users").PutString(ctx, "row1", "info", "name", "v1")
package client

import (
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/pkg/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Conn is a connection to a VersionTable server. It is safe for concurrent use.
type Conn struct {
	cc  *grpc.ClientConn
	api api.VersionTableClient
}

// Dial connects to target. The connection is plaintext unless opts carry transport
// credentials. Dial does not wait for the server; the first call does.
func Dial(target string, opts ...grpc.DialOption) (*Conn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	cc, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", target)
	}
	return &Conn{
		cc:  cc,
		api: api.NewVersionTableClient(cc),
	}, nil
}

// Close tears the connection down.
func (c *Conn) Close() error {
	return c.cc.Close()
}

// Admin returns the table administration handle.
func (c *Conn) Admin() *Admin {
	return &Admin{api: c.api}
}

// Table returns a data handle for the named table. The table is not checked until the
// first call.
func (c *Conn) Table(name string) *Table {
	return &Table{
		name: name,
		api:  c.api,
	}
}
