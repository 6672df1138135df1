package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blaubaer/host-remote/pkg/app"
)

func TestExecute(t *testing.T) {
	a := app.NewApp()

	assert.True(t, execute(a, "exit"))
	assert.True(t, execute(a, "quit"))

	assert.False(t, execute(a, ""))
	assert.False(t, execute(a, "help"))
	assert.False(t, execute(a, "volume abc"))
	assert.False(t, execute(a, "somethingElse"))
}
