package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/ninepatch/internal"
)

type closeRecorder struct {
	name  string
	order *[]string
	err   error
}

func (c *closeRecorder) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestCloserOrder(t *testing.T) {
	var order []string
	errB := errors.New(`b failed`)
	a := &closeRecorder{name: `a`, order: &order}
	b := &closeRecorder{name: `b`, order: &order, err: errB}

	cl := internal.NewCloser()
	cl.AddClosers(a, b, a, nil)
	cl.OnClose(func() error { order = append(order, `fn`); return nil })

	err := cl.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{`fn`, `b`, `a`}, order)

	// closed closers are released
	assert.NoError(t, cl.Close())
	assert.Equal(t, []string{`fn`, `b`, `a`}, order)
}
