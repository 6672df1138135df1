package macro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaubaer/host-remote/pkg/common"
)

func TestTrigger_Exec_targetNotRunning(t *testing.T) {
	messenger := &stubMessenger{}
	instance := &Trigger{messenger: messenger}

	err := instance.Exec("Foo")

	assert.ErrorIs(t, err, ErrTargetNotRunning)
	assert.Empty(t, messenger.sent, "nothing may be sent if the window is absent")
}

func TestTrigger_Exec_deliversPayload(t *testing.T) {
	messenger := &stubMessenger{window: 42, delivered: true}
	instance := &Trigger{messenger: messenger}

	require.NoError(t, instance.Exec("Foo"))

	require.Len(t, messenger.sent, 1)
	sent := messenger.sent[0]
	assert.Equal(t, uintptr(42), sent.window)
	assert.Equal(t, uintptr(24), sent.id)
	assert.Equal(t, "Macro: Foo", string(sent.payload))
	assert.Equal(t, 5*time.Second, sent.timeout)
}

func TestTrigger_Exec_usesConfiguredTitleAndTimeout(t *testing.T) {
	messenger := &stubMessenger{window: 7, delivered: true}
	instance := &Trigger{
		WindowTitle: "Another Target",
		Timeout:     1500 * time.Millisecond,
		messenger:   messenger,
	}

	require.NoError(t, instance.Exec("Bar"))

	assert.Equal(t, []string{"Another Target"}, messenger.lookedUp)
	require.Len(t, messenger.sent, 1)
	assert.Equal(t, 1500*time.Millisecond, messenger.sent[0].timeout)
}

func TestTrigger_Exec_deliveryFailed(t *testing.T) {
	messenger := &stubMessenger{
		window: 42,
		code:   common.HresultFromWin32(1460), // ERROR_TIMEOUT
	}
	instance := &Trigger{messenger: messenger}

	err := instance.Exec("Foo")

	de, ok := common.AsError[*DeliveryError](err)
	require.True(t, ok)
	assert.Equal(t, common.Hresult(0x800705b4), de.Code)
	assert.Equal(t, "failed to execute Translator macro (0x800705B4)", de.Error())
}

func TestTrigger_Exec_nonDeliveryWithoutCodeIsSuccess(t *testing.T) {
	// The send reported non-delivery but left no error code behind; this
	// cannot be told apart from success and therefore counts as one.
	messenger := &stubMessenger{window: 42}
	instance := &Trigger{messenger: messenger}

	assert.NoError(t, instance.Exec("Foo"))
}

func TestTrigger_TargetPresent(t *testing.T) {
	instance := &Trigger{messenger: &stubMessenger{}}
	present, err := instance.TargetPresent()
	require.NoError(t, err)
	assert.False(t, present)

	instance = &Trigger{messenger: &stubMessenger{window: 42}}
	present, err = instance.TargetPresent()
	require.NoError(t, err)
	assert.True(t, present)
}

type sentMessage struct {
	window  uintptr
	id      uintptr
	payload []byte
	timeout time.Duration
}

type stubMessenger struct {
	window    uintptr
	delivered bool
	code      common.Hresult

	lookedUp []string
	sent     []sentMessage
}

func (this *stubMessenger) findWindow(title string) (uintptr, bool, error) {
	this.lookedUp = append(this.lookedUp, title)
	return this.window, this.window != 0, nil
}

func (this *stubMessenger) sendCopyData(window uintptr, id uintptr, payload []byte, timeout time.Duration) (bool, common.Hresult, error) {
	this.sent = append(this.sent, sentMessage{window, id, payload, timeout})
	return this.delivered, this.code, nil
}
