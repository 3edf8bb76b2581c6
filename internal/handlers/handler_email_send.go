package handlers

import (
	"founderdeck/internal/mailer"
	"founderdeck/internal/metrics"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/models"
	"net/http"
)

func POSTEmailSendHandler(ctx *middlewares.AppContext) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req EmailSendRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if req.To == "" || req.Subject == "" {
		ctx.SetJSONError(http.StatusBadRequest, "Recipient and subject are required")
		return
	}

	apiKey, found := ctx.Settings.Resolve(ctx, user.ID, models.SettingResendAPIKey)
	if !found {
		ctx.SetJSONError(http.StatusBadRequest, "No email api key configured")
		return
	}

	msg := mailer.Message{
		From:    ctx.Config.Integrations.Resend.FromAddress,
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
		Text:    req.Text,
	}

	if err := ctx.Mailer.Send(ctx, apiKey, msg); err != nil {
		metrics.EmailsSentTotal.WithLabelValues("failure").Inc()
		ctx.Logger.Error("failed to send email", "error", err, "to", RedactEmail(req.To))
		ctx.SetJSONError(http.StatusBadGateway, "Failed to send email")
		return
	}

	metrics.EmailsSentTotal.WithLabelValues("success").Inc()
	ctx.Logger.Info("email sent", "to", RedactEmail(req.To))
	ctx.SetJSONStatus(http.StatusOK, "sent")
}
