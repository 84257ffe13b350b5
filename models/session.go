// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SessionStateName is the value of the "state" tag persisted with a session.
type SessionStateName string

const (
	StateWaitingToken      SessionStateName = "waiting_token"
	StateWaitingAccountID  SessionStateName = "waiting_account_id"
	StateDeployNautikaName SessionStateName = "deploy_nautika_name"
	StateDeployGithubName  SessionStateName = "deploy_github_name"
	StateDeployGithubURL   SessionStateName = "deploy_github_url"
)

// ErrUnknownSessionState is returned when a persisted session carries a state
// tag that no variant maps to.
var ErrUnknownSessionState = errors.New("unknown session state")

// SessionState is one step of a multi-step conversation flow. Every variant
// carries exactly the working fields its step needs.
type SessionState interface {
	StateName() SessionStateName
}

// WaitingToken waits for the user to paste an API token.
type WaitingToken struct{}

// WaitingAccountID holds the token received in the previous step until the
// account id arrives and the pair is validated.
type WaitingAccountID struct {
	Token string
}

// DeployNautikaName waits for the name of the built-in script deployment.
type DeployNautikaName struct{}

// DeployGithubName waits for the name of a GitHub based deployment.
type DeployGithubName struct{}

// DeployGithubURL holds the accepted worker name until the repository URL
// arrives.
type DeployGithubURL struct {
	WorkerName string
}

func (WaitingToken) StateName() SessionStateName      { return StateWaitingToken }
func (WaitingAccountID) StateName() SessionStateName  { return StateWaitingAccountID }
func (DeployNautikaName) StateName() SessionStateName { return StateDeployNautikaName }
func (DeployGithubName) StateName() SessionStateName  { return StateDeployGithubName }
func (DeployGithubURL) StateName() SessionStateName   { return StateDeployGithubURL }

// Session is the single in-progress flow of one user. A nil State means no
// flow is running.
type Session struct {
	UserID    int64
	State     SessionState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether a flow is in progress.
func (s Session) Active() bool {
	return s.State != nil
}

// sessionPayload is the JSON shape stored in sessions.session_data. Field
// names are kept stable so that rows written by older deployments decode.
type sessionPayload struct {
	State      SessionStateName `json:"state,omitempty"`
	TempToken  string           `json:"tempToken,omitempty"`
	WorkerName string           `json:"workerName,omitempty"`
}

// EncodeSessionState serializes state into the persisted JSON payload.
// A nil state encodes as an empty object.
func EncodeSessionState(state SessionState) ([]byte, error) {
	var p sessionPayload

	switch s := state.(type) {
	case nil:
	case WaitingToken:
		p.State = s.StateName()
	case WaitingAccountID:
		p.State = s.StateName()
		p.TempToken = s.Token
	case DeployNautikaName:
		p.State = s.StateName()
	case DeployGithubName:
		p.State = s.StateName()
	case DeployGithubURL:
		p.State = s.StateName()
		p.WorkerName = s.WorkerName
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownSessionState, state)
	}

	return json.Marshal(p)
}

// DecodeSessionState parses a persisted payload back into its variant.
// An empty payload or a payload without a state tag decodes to nil.
func DecodeSessionState(data []byte) (SessionState, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var p sessionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error decoding session payload: %w", err)
	}

	switch p.State {
	case "":
		return nil, nil
	case StateWaitingToken:
		return WaitingToken{}, nil
	case StateWaitingAccountID:
		return WaitingAccountID{Token: p.TempToken}, nil
	case StateDeployNautikaName:
		return DeployNautikaName{}, nil
	case StateDeployGithubName:
		return DeployGithubName{}, nil
	case StateDeployGithubURL:
		return DeployGithubURL{WorkerName: p.WorkerName}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionState, p.State)
	}
}
