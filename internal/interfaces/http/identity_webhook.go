package http

import (
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"

	"cinema/internal/entities"
)

// IdentityWebhookRequest is the identity provider's delivery envelope.
type IdentityWebhookRequest struct {
	Type string              `json:"type"`
	Data IdentityWebhookData `json:"data"`
}

type IdentityWebhookData struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	ImageURL string `json:"image_url"`
}

func (s *Server) IdentityWebhookHandler(c echo.Context) error {
	var request IdentityWebhookRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload")
	}
	if request.Data.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing user id")
	}

	ctx := log.ContextWithCorrelationID(c.Request().Context(), shortuuid.New())

	var event entities.Event
	switch request.Type {
	case "user.created":
		event = entities.UserCreated_v1{
			Header:         entities.NewEventHeader(),
			UserID:         request.Data.ID,
			FirstName:      request.Data.FirstName,
			LastName:       request.Data.LastName,
			EmailAddresses: emailAddresses(request.Data),
			ImageURL:       request.Data.ImageURL,
		}
	case "user.updated":
		event = entities.UserUpdated_v1{
			Header:         entities.NewEventHeader(),
			UserID:         request.Data.ID,
			FirstName:      request.Data.FirstName,
			LastName:       request.Data.LastName,
			EmailAddresses: emailAddresses(request.Data),
			ImageURL:       request.Data.ImageURL,
		}
	case "user.deleted":
		event = entities.UserDeleted_v1{
			Header: entities.NewEventHeader(),
			UserID: request.Data.ID,
		}
	default:
		// Providers add webhook types over time; unknown ones are not
		// an error on our side.
		log.FromContext(ctx).Info("Ignoring unknown webhook type: ", request.Type)
		return c.NoContent(http.StatusOK)
	}

	if err := s.ingestor.Ingest(ctx, event); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func emailAddresses(data IdentityWebhookData) []entities.EmailAddress {
	addresses := make([]entities.EmailAddress, 0, len(data.EmailAddresses))
	for _, address := range data.EmailAddresses {
		addresses = append(addresses, entities.EmailAddress{EmailAddress: address.EmailAddress})
	}
	return addresses
}
