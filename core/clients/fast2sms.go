// Package clients holds the outbound HTTP integrations of the server.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/logger"
)

const fast2SMSEndpoint = "https://www.fast2sms.com/dev/bulkV2"

// Fast2SMS delivers OTP codes over SMS through the Fast2SMS bulk API.
type Fast2SMS struct {
	apiKey string
	client *http.Client
}

// NewFast2SMS creates a Fast2SMS client with the given API key.
func NewFast2SMS(apiKey string) *Fast2SMS {
	return &Fast2SMS{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOTP sends a one time code to the given phone number.
func (f *Fast2SMS) SendOTP(ctx context.Context, phone, otp string) error {
	log := logger.GetAppLogger()

	payload := map[string]interface{}{
		"variables_values": otp,
		"route":            "otp",
		"numbers":          phone,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fast2SMSEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authorization", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("phone", phone).Error("Cannot reach Fast2SMS")
		return common.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"phone":      phone,
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("Fast2SMS returned an error")
		return common.NewError(common.ErrCodeExternal,
			fmt.Sprintf("Fast2SMS returned status %d", resp.StatusCode),
			common.StatusBadGateway, nil)
	}

	return nil
}
