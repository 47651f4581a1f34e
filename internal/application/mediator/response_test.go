package mediator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atorres/orderhub/internal/application/mediator"
)

func TestOK_SuccessInvariants(t *testing.T) {
	response := mediator.OK("payload")

	assert.True(t, response.Success)
	assert.Equal(t, "payload", response.Data)
	assert.Empty(t, response.Notifications)
	assert.Equal(t, 200, response.Code)
}

func TestFail_FailureInvariants(t *testing.T) {
	notifications := []mediator.Notification{
		mediator.NewNotification("Name", "Name is required."),
		mediator.NewNotification("", "Something else went wrong."),
	}

	response := mediator.Fail[string](notifications)

	assert.False(t, response.Success)
	assert.Equal(t, "", response.Data)
	assert.Equal(t, notifications, response.Notifications)
	assert.Equal(t, 400, response.Code)
}

func TestFailWithCode_OverridesCode(t *testing.T) {
	response := mediator.FailWithCode[string](404, []mediator.Notification{
		mediator.NewNotification("", "Order not found."),
	})

	assert.False(t, response.Success)
	assert.Equal(t, 404, response.Code)
}

func TestFail_PanicsWithoutNotifications(t *testing.T) {
	assert.Panics(t, func() {
		mediator.Fail[string](nil)
	})
}

func TestSuccessImpliesNoNotifications(t *testing.T) {
	// The envelope invariant holds across construction paths, not just
	// for a single example
	envelopes := []mediator.Response[string]{
		mediator.OK("a"),
		mediator.OK(""),
		mediator.Fail[string]([]mediator.Notification{mediator.NewNotification("", "failed")}),
		mediator.FailWithCode[string](500, []mediator.Notification{mediator.NewNotification("", "failed")}),
	}

	for _, envelope := range envelopes {
		assert.Equal(t, envelope.Success, len(envelope.Notifications) == 0)
	}
}

func TestPagedOK_ComputesTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int64
		pageSize   int
		want       int
	}{
		{"partial last page", 101, 20, 6},
		{"exact fit", 100, 20, 5},
		{"single page", 5, 20, 1},
		{"empty", 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := mediator.PagedOK([]string{}, tt.totalCount, 1, tt.pageSize)

			require.True(t, response.Success)
			assert.Equal(t, tt.want, response.TotalPages)
			assert.Equal(t, tt.totalCount, response.TotalCount)
			assert.Equal(t, tt.pageSize, response.PageSize)
		})
	}
}

func TestPagedOK_PanicsOnInvalidPageArguments(t *testing.T) {
	assert.Panics(t, func() {
		mediator.PagedOK([]string{}, 10, 0, 20)
	})
	assert.Panics(t, func() {
		mediator.PagedOK([]string{}, 10, 1, 0)
	})
	assert.Panics(t, func() {
		mediator.PagedOK([]string{}, -1, 1, 20)
	})
}

func TestPagedFailWithCode_FailureInvariants(t *testing.T) {
	response := mediator.PagedFailWithCode[string](404, []mediator.Notification{
		mediator.NewNotification("", "No orders found."),
	})

	assert.False(t, response.Success)
	assert.Equal(t, 404, response.Code)
	assert.Empty(t, response.Data)
	require.Len(t, response.Notifications, 1)
	assert.Equal(t, "No orders found.", response.Notifications[0].Message)
}
