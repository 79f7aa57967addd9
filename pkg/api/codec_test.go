package api

import (
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"testing"
)

func TestCodec(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	codec := encoding.GetCodec(CodecName)
	req.NotNil(codec)
	req.Equal("json", codec.Name())

	in := &PutRequest{
		Table: "users",
		Row:   []byte{0x00, 0xff, 'r'},
		Columns: []*Column{
			{Family: "info", Qualifier: []byte("name"), Value: []byte("héllo"), Timestamp: 42},
		},
	}
	data, err := codec.Marshal(in)
	req.NoError(err)

	out := &PutRequest{}
	req.NoError(codec.Unmarshal(data, out))
	req.Equal(in, out)
}
