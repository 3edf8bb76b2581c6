package handlers_test

import (
	"errors"
	"founderdeck/internal/handlers"
	"founderdeck/internal/mailer"
	"founderdeck/internal/models"
	"founderdeck/internal/storage"
	"founderdeck/internal/testutil"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmailSendSuccess(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/email/send",
		`{"to":"founder@example.com","subject":"Weekly digest","html":"<p>hello</p>"}`)
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingResendAPIKey, "re_stored_key", nil)

	tc.MockMailer.EXPECT().
		Send(gomock.Any(), "re_stored_key", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, msg mailer.Message) error {
			assert.Equal(t, "founder@example.com", msg.To)
			assert.Equal(t, "Weekly digest", msg.Subject)
			assert.Equal(t, "<p>hello</p>", msg.HTML)
			return nil
		})

	tc.CallHandler(handlers.POSTEmailSendHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "sent")
}

func TestEmailSendValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing recipient", body: `{"subject":"Weekly digest"}`},
		{name: "missing subject", body: `{"to":"founder@example.com"}`},
		{name: "invalid json", body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/email/send", tt.body)
			defer tc.Finish()

			user := &models.User{ID: "user-1", Username: "founder"}
			tc.ExpectAuthenticatedUser(user, true)

			tc.CallHandler(handlers.POSTEmailSendHandler)

			tc.AssertStatus(t, http.StatusBadRequest)
		})
	}
}

func TestEmailSendWithoutAPIKey(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/email/send",
		`{"to":"founder@example.com","subject":"Weekly digest"}`)
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingResendAPIKey, "", storage.ErrSettingNotFound)

	tc.CallHandler(handlers.POSTEmailSendHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
}

func TestEmailSendProviderFailure(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/api/email/send",
		`{"to":"founder@example.com","subject":"Weekly digest","text":"hello"}`)
	defer tc.Finish()

	user := &models.User{ID: "user-1", Username: "founder"}
	tc.ExpectAuthenticatedUser(user, true)
	tc.ExpectUserSetting("user-1", models.SettingResendAPIKey, "re_stored_key", nil)

	tc.MockMailer.EXPECT().
		Send(gomock.Any(), "re_stored_key", gomock.Any()).
		Return(errors.New("email provider returned status 422"))

	tc.CallHandler(handlers.POSTEmailSendHandler)

	tc.AssertStatus(t, http.StatusBadGateway)
}

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"founder@example.com", "f*****r@example.com"},
		{"ab@example.com", "**@example.com"},
		{"a@example.com", "*@example.com"},
		{"not-an-email", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, handlers.RedactEmail(tt.in))
	}
}
