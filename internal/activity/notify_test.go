package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) Send(ctx context.Context, to, templateName string, vars map[string]string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, templateName+" to "+to)
	return "msg_1", nil
}

func TestSendSiteReadyEmail_Success(t *testing.T) {
	mail := &mockMailer{}
	a := NewNotify(mail, true)

	result, err := a.SendSiteReadyEmail(context.Background(), SendSiteReadyEmailParams{
		To: "owner@acme.test", OwnerName: "Dana", Domain: "acme.onjuzbuild.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "msg_1", result.MessageID)
	assert.False(t, result.Skipped)
	assert.Equal(t, []string{"website-creation to owner@acme.test"}, mail.sent)
}

func TestSendSiteReadyEmail_Disabled_NoNetworkCalls(t *testing.T) {
	mail := &mockMailer{}
	a := NewNotify(mail, false)

	result, err := a.SendSiteReadyEmail(context.Background(), SendSiteReadyEmailParams{
		To: "owner@acme.test",
	})
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Empty(t, mail.sent)
}

func TestSendSiteReadyEmail_ProviderError(t *testing.T) {
	mail := &mockMailer{err: fmt.Errorf("status 401: invalid api key")}
	a := NewNotify(mail, true)

	_, err := a.SendSiteReadyEmail(context.Background(), SendSiteReadyEmailParams{To: "owner@acme.test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}
