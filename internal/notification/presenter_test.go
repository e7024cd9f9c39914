package notification

import (
	"testing"
	"time"

	"stopwatch/internal/core/command"
	"stopwatch/internal/core/stopwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(descriptor Descriptor) []string {
	var out []string
	for _, action := range descriptor.Actions {
		out = append(out, action.Label)
	}
	return out
}

func TestNewPresenter_Defaults(t *testing.T) {
	t.Parallel()

	descriptor := NewPresenter(DefaultConfig()).Descriptor()

	assert.Equal(t, "Stopwatch", descriptor.Title)
	assert.Equal(t, "00:00:00", descriptor.Body)
	assert.Equal(t, []string{"Stop", "Cancel"}, labels(descriptor))
	assert.Equal(t, "stopwatch_notification_id", descriptor.Channel.ID)
	assert.Equal(t, ImportanceLow, descriptor.Channel.Importance)
	assert.Equal(t, 10, descriptor.SlotID)
	assert.True(t, descriptor.Ongoing)
	assert.True(t, descriptor.OpensView)
}

func TestPresenter_PrimarySwapKeepsCancelInPlace(t *testing.T) {
	t.Parallel()

	presenter := NewPresenter(DefaultConfig())

	presenter.ShowResume()
	descriptor := presenter.Descriptor()
	require.Len(t, descriptor.Actions, 2)
	assert.Equal(t, []string{"Resume", "Cancel"}, labels(descriptor))
	assert.Equal(t, command.Start, command.Decode(descriptor.Actions[0].Request))
	assert.Equal(t, command.Cancel, command.Decode(descriptor.Actions[1].Request))

	presenter.ShowStop()
	presenter.ShowStop()
	descriptor = presenter.Descriptor()
	assert.Equal(t, []string{"Stop", "Cancel"}, labels(descriptor))
	assert.Equal(t, command.Stop, command.Decode(descriptor.Actions[0].Request))

	primary, ok := descriptor.Primary()
	require.True(t, ok)
	assert.Equal(t, "Stop", primary.Label)
}

func TestPresenter_SetTime(t *testing.T) {
	t.Parallel()

	presenter := NewPresenter(DefaultConfig())
	presenter.SetTime(stopwatch.Format(3661 * time.Second))
	assert.Equal(t, "01:01:01", presenter.Descriptor().Body)
}

func TestPresenter_DescriptorIsACopy(t *testing.T) {
	t.Parallel()

	presenter := NewPresenter(DefaultConfig())
	descriptor := presenter.Descriptor()
	descriptor.Actions[0].Label = "mutated"

	assert.Equal(t, []string{"Stop", "Cancel"}, labels(presenter.Descriptor()))
}

func TestDescriptor_PrimaryOnEmpty(t *testing.T) {
	t.Parallel()

	_, ok := Descriptor{}.Primary()
	assert.False(t, ok)
}
