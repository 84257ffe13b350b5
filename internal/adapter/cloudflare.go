// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"time"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
	"github.com/go-resty/resty/v2"
)

const (
	tokenStatusActive = "active"
	uploadBoundary    = "----WorkerBoundary"
)

type cloudflareEnvelope struct {
	Success bool                `json:"success"`
	Errors  []cloudflareMessage `json:"errors"`
	Result  json.RawMessage     `json:"result"`
}

type cloudflareMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e cloudflareEnvelope) firstError() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

type tokenVerification struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type uploadMetadata struct {
	BodyPart string           `json:"body_part"`
	Bindings []models.Binding `json:"bindings"`
}

type cloudflareAdapterFactory struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewCloudflareAdapterFactory constructs the factory of per-credential
// Workers API adapters. All adapters share one resty client configured with
// cfg.APIURL and cfg.RequestTimeout.
func NewCloudflareAdapterFactory(cfg config.Cloudflare, log *logger.Logger) (CloudflareAdapterFactory, error) {
	client, err := newRestClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudflare api url: %w", err)
	}

	return &cloudflareAdapterFactory{client: client, logger: log}, nil
}

func (f *cloudflareAdapterFactory) ForCredential(credential models.Credential) CloudflareAdapter {
	return &cloudflareAdapter{
		client:     f.client,
		credential: credential.Normalize(),
		logger:     f.logger,
	}
}

type cloudflareAdapter struct {
	client     *utils.HTTPClient
	credential models.Credential
	logger     *logger.Logger
}

func (c *cloudflareAdapter) VerifyCredential(ctx context.Context) (models.Account, error) {
	var verification tokenVerification
	if err := c.do(ctx, c.request(ctx), resty.MethodGet, "/user/tokens/verify", &verification); err != nil {
		return models.Account{}, err
	}
	if verification.Status != tokenStatusActive {
		return models.Account{}, &RemoteError{
			Message: fmt.Sprintf("API token is not active (status: %s)", verification.Status),
			Err:     ErrTokenInactive,
		}
	}

	var accounts []models.Account
	if err := c.do(ctx, c.request(ctx), resty.MethodGet, "/accounts", &accounts); err != nil {
		return models.Account{}, err
	}
	if len(accounts) == 0 {
		return models.Account{}, &RemoteError{Message: "Invalid token or no accounts found", Err: ErrNoAccounts}
	}

	account := accounts[0]
	account.TokenStatus = verification.Status

	c.logger.Debug().Str("func", "*cloudflareAdapter.VerifyCredential").
		Str("account_id", account.ID).Msg("credential verified")

	return account, nil
}

func (c *cloudflareAdapter) ListScripts(ctx context.Context) ([]models.Script, error) {
	scripts := make([]models.Script, 0)
	if err := c.do(ctx, c.request(ctx), resty.MethodGet, "/accounts/{accountId}/workers/scripts", &scripts); err != nil {
		return nil, err
	}
	return scripts, nil
}

func (c *cloudflareAdapter) GetScript(ctx context.Context, name string) (models.Script, error) {
	resp, err := c.request(ctx).
		SetPathParam("scriptName", name).
		Get("/accounts/{accountId}/workers/scripts/{scriptName}")
	if err != nil {
		return models.Script{}, mapTransportError(err)
	}
	if err = mapHTTPError(resp, cloudflareErrorMessage); err != nil {
		return models.Script{}, err
	}

	// The endpoint answers with the raw script source, not an envelope.
	return models.Script{ID: name, ETag: resp.Header().Get("ETag")}, nil
}

func (c *cloudflareAdapter) DeployScript(ctx context.Context, upload models.ScriptUpload) (models.Deployment, error) {
	boundary := uploadBoundary + strconv.FormatInt(time.Now().UnixNano(), 10)
	body, err := buildUploadBody(boundary, upload)
	if err != nil {
		return models.Deployment{}, fmt.Errorf("build upload body: %w", err)
	}

	var script models.Script
	req := c.request(ctx).
		SetPathParam("scriptName", upload.Name).
		SetHeader("Content-Type", "multipart/form-data; boundary="+boundary).
		SetBody(body)
	if err = c.do(ctx, req, resty.MethodPut, "/accounts/{accountId}/workers/scripts/{scriptName}", &script); err != nil {
		return models.Deployment{}, err
	}
	if script.ID == "" {
		script.ID = upload.Name
	}

	c.logger.Info().Str("func", "*cloudflareAdapter.DeployScript").
		Str("worker_name", upload.Name).Int("bindings", len(upload.Bindings)).Msg("script uploaded")

	return models.Deployment{
		Name:   upload.Name,
		URL:    models.WorkerURL(upload.Name, c.credential.AccountID),
		Script: script,
	}, nil
}

func (c *cloudflareAdapter) DeleteScript(ctx context.Context, name string) error {
	req := c.request(ctx).SetPathParam("scriptName", name)
	return c.do(ctx, req, resty.MethodDelete, "/accounts/{accountId}/workers/scripts/{scriptName}", nil)
}

// request returns a request carrying the credential. Headers are set per
// request so that adapters of different users can share the client.
func (c *cloudflareAdapter) request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetAuthToken(c.credential.Token).
		SetPathParam("accountId", c.credential.AccountID)
}

// do executes req and decodes the envelope result into out (when non-nil).
func (c *cloudflareAdapter) do(ctx context.Context, req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return mapTransportError(err)
	}
	if err = mapHTTPError(resp, cloudflareErrorMessage); err != nil {
		logger.FromContext(ctx).Debug().Str("func", "*cloudflareAdapter.do").
			Str("method", method).Str("path", path).Int("status", resp.StatusCode()).
			Msg("remote call failed")
		return err
	}

	var env cloudflareEnvelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode(), Message: "unexpected response from Cloudflare", Err: fmt.Errorf("%w: %w", ErrDecodingPayload, err)}
	}
	if !env.Success {
		msg := env.firstError()
		if msg == "" {
			msg = "request was not successful"
		}
		return &RemoteError{StatusCode: resp.StatusCode(), Message: msg, Err: ErrUnexpectedStatus}
	}

	if out == nil || len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err = json.Unmarshal(env.Result, out); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode(), Message: "unexpected response from Cloudflare", Err: fmt.Errorf("%w: %w", ErrDecodingPayload, err)}
	}
	return nil
}

// buildUploadBody assembles the two-part upload: a JSON "metadata" part
// naming the script part and listing bindings, followed by the "script" part.
func buildUploadBody(boundary string, upload models.ScriptUpload) ([]byte, error) {
	bindings := upload.Bindings
	if bindings == nil {
		bindings = []models.Binding{}
	}
	metadata, err := json.Marshal(uploadMetadata{BodyPart: "script", Bindings: bindings})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err = w.SetBoundary(boundary); err != nil {
		return nil, err
	}

	parts := []struct {
		name, contentType string
		content           []byte
	}{
		{name: "metadata", contentType: "application/json", content: metadata},
		{name: "script", contentType: "application/javascript", content: []byte(upload.Content)},
	}
	for _, p := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, p.name))
		header.Set("Content-Type", p.contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err = part.Write(p.content); err != nil {
			return nil, err
		}
	}

	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
