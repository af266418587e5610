package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palhope_backend/internals/configs"
)

func TestNewFromEnvSecureFlag(t *testing.T) {
	orig := configs.SMTPSecure
	defer func() { configs.SMTPSecure = orig }()

	configs.SMTPSecure = "true"
	assert.True(t, NewFromEnv().secure)

	configs.SMTPSecure = "false"
	assert.False(t, NewFromEnv().secure)
}

func TestSendWithoutHost(t *testing.T) {
	m := &Mailer{}
	err := m.Send("donor@example.com", "Terima kasih", "halo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@palhope.org", "donor@example.com", "Terima kasih atas donasimu!", "Halo Budi"))

	assert.Contains(t, msg, "From: \"PalHope\" <noreply@palhope.org>\r\n")
	assert.Contains(t, msg, "To: donor@example.com\r\n")
	assert.Contains(t, msg, "Subject: Terima kasih atas donasimu!\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\nHalo Budi"))
}
