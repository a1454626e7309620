package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenUnreachableServer(t *testing.T) {
	// Port 1 is never a MySQL server; Open must surface the ping failure
	// instead of handing back a pool that fails on first use.
	db, err := Open("charter", "secret", "127.0.0.1", "1", "charter")
	assert.Error(t, err)
	assert.Nil(t, db)
}
