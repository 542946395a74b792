package services

import (
	"copyadmin/config"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// AuthVerifier checks an external session token and resolves the acting
// user id. The OTP flow itself lives entirely in the auth backend; this
// service only trusts the id it hands back.
type AuthVerifier interface {
	VerifySession(token string) (string, error)
}

// RestyAuthClient talks to the external auth backend over HTTP.
type RestyAuthClient struct {
	client  *resty.Client
	baseURL string
}

func NewAuthClient() *RestyAuthClient {
	return &RestyAuthClient{
		client:  resty.New().SetTimeout(10 * time.Second),
		baseURL: config.AppConfig.AuthServiceURL,
	}
}

func (a *RestyAuthClient) VerifySession(token string) (string, error) {
	var result struct {
		Status bool   `json:"status"`
		UserID string `json:"userId"`
	}

	resp, err := a.client.R().
		SetBody(map[string]string{"sessionToken": token}).
		SetResult(&result).
		Post(a.baseURL + "/session/verify")
	if err != nil {
		return "", err
	}
	if resp.IsError() || !result.Status || result.UserID == "" {
		return "", fmt.Errorf("session rejected by auth backend")
	}
	return result.UserID, nil
}
