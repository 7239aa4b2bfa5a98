package link

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCPSourceAcceptsOneConnection(t *testing.T) {
	source, err := ListenTCP(context.Background(), "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })

	go func() {
		conn, err := net.Dial("tcp", source.Addr().String())
		if err != nil {
			return
		}
		defer conn.Close()
		_, _ = conn.Write([]byte("hola\n"))
	}()

	conn, err := source.Next(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "hola\n", line)
	assert.True(t, strings.HasPrefix(source.String(), "tcp 127.0.0.1:"))
}

func TestTCPSourceNextStopsOnCancel(t *testing.T) {
	source, err := ListenTCP(context.Background(), "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = source.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTCPSourceExhaustedAfterClose(t *testing.T) {
	source, err := ListenTCP(context.Background(), "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, source.Close())

	_, err = source.Next(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
	assert.NoError(t, source.Close())
}

func TestStdioSourceServesOnce(t *testing.T) {
	var out bytes.Buffer
	source := &StdioSource{In: strings.NewReader("hola\n"), Out: &out}

	conn, err := source.Next(context.Background())
	require.NoError(t, err)

	data, err := io.ReadAll(conn)
	require.NoError(t, err)
	_, err = io.WriteString(conn, "adios\n")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	assert.Equal(t, "hola\n", string(data))
	assert.Equal(t, "adios\n", out.String())

	_, err = source.Next(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestSerialSourceReportsMissingPort(t *testing.T) {
	source := &SerialSource{Port: "/dev/lora-bbs-missing", BaudRate: 9600}

	_, err := source.Next(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open serial port /dev/lora-bbs-missing")
	assert.Equal(t, "serial /dev/lora-bbs-missing @ 9600", source.String())
}

func TestMapPortErrorPassesOtherErrors(t *testing.T) {
	assert.NoError(t, mapPortError(nil))
	assert.Equal(t, io.ErrUnexpectedEOF, mapPortError(io.ErrUnexpectedEOF))
}
