package background

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/codeXAI06/ReliefLink/consts"
	"github.com/codeXAI06/ReliefLink/external/push"
	"github.com/codeXAI06/ReliefLink/schema"
	"github.com/codeXAI06/ReliefLink/utils"
)

// Push template identifier configured on the gateway side.
const (
	TEMPLATE_NEW_REQUEST_NEARBY = "8b0a6b74-9f1e-44d2-9c27-2f01f76f0a51"
)

// BroadcastNewRequest is a background job to notify helpers around a
// freshly created request. The helper set comes from the geo profile
// collection, nearest first.
func (m *BackgroundManager) BroadcastNewRequest(requestID string, latitude, longitude float64) error {
	profiles, err := m.mongo.NearestHelpers(consts.NOTIFY_DISTANCE_RANGE, schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		return err
	}

	log.Infof("broadcast request %s to %d nearby helpers", requestID, len(profiles))

	for _, profile := range profiles {
		if err := m.notifyByTemplate(profile.Phone, TEMPLATE_NEW_REQUEST_NEARBY, map[string]interface{}{
			"notification_type": "NEW_REQUEST_NEARBY",
			"request_id":        requestID,
		}); err != nil {
			log.WithError(err).Errorf("notify helper %s", profile.HelperID)
		}
	}

	return nil
}

// NotifyRequestAccepted is a background job to tell the requester their
// request was taken by a volunteer. The message text follows the
// language detected on the request.
func (m *BackgroundManager) NotifyRequestAccepted(requestID string, phone string, lang string) error {
	localizer := utils.NewLocalizer(lang)

	title, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "notification.request_accepted.title"})
	if err != nil {
		title = "Help is on the way"
	}
	body, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "notification.request_accepted.body"})
	if err != nil {
		body = "A volunteer accepted your request and is coming to you."
	}

	req := &push.NotificationRequest{
		AppID:    viper.GetString("push.appid"),
		Headings: map[string]string{"en": title},
		Contents: map[string]string{"en": body},
		Filters: []map[string]string{
			{
				"field":    "tag",
				"key":      "phone",
				"relation": "=",
				"value":    phone,
			},
		},
		Data: map[string]interface{}{
			"notification_type": "REQUEST_ACCEPTED",
			"request_id":        requestID,
		},
		LocalChannelID: "important_alert",
	}
	return m.push.SendNotification(context.Background(), req)
}

// notifyByTemplate submits one templated notification addressed by
// phone tag.
func (m *BackgroundManager) notifyByTemplate(phone string, templateID string, data map[string]interface{}) error {
	req := &push.NotificationRequest{
		AppID:      viper.GetString("push.appid"),
		TemplateID: templateID,
		Filters: []map[string]string{
			{
				"field":    "tag",
				"key":      "phone",
				"relation": "=",
				"value":    phone,
			},
		},
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return m.push.SendNotification(context.Background(), req)
}
