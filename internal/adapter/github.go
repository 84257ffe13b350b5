package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v60/github"

	"github.com/MKhiriev/go-workers-bot/internal/config"
	"github.com/MKhiriev/go-workers-bot/internal/logger"
	"github.com/MKhiriev/go-workers-bot/internal/utils"
	"github.com/MKhiriev/go-workers-bot/models"
)

const entryScript = "index.js"

// scriptRefs are the branches probed for the entry script, in order.
var scriptRefs = []string{"main", "master"}

// NewScriptFetcher returns the authenticated contents API fetcher when a
// GitHub token is configured, otherwise the anonymous raw content fetcher.
func NewScriptFetcher(cfg config.GitHub, timeout time.Duration, log *logger.Logger) (ScriptFetcher, error) {
	if cfg.Token != "" {
		return NewAPIScriptFetcher(cfg.APIURL, cfg.Token, timeout, log)
	}
	return NewRawScriptFetcher(cfg.RawURL, timeout, log)
}

// RawScriptFetcher downloads {raw}/{owner}/{repo}/{ref}/index.js.
type RawScriptFetcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

func NewRawScriptFetcher(rawURL string, timeout time.Duration, log *logger.Logger) (*RawScriptFetcher, error) {
	client, err := newRestClient(rawURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid github raw url: %w", err)
	}
	return &RawScriptFetcher{client: client, logger: log}, nil
}

func (f *RawScriptFetcher) FetchScript(ctx context.Context, repo models.GitHubRepo) (string, error) {
	return fetchFirstRef(ctx, f.logger, repo, func(ref string) (string, error) {
		resp, err := f.client.R().
			SetContext(ctx).
			SetPathParams(map[string]string{
				"owner": repo.Owner,
				"repo":  repo.Name,
				"ref":   ref,
			}).
			Get("/{owner}/{repo}/{ref}/" + entryScript)
		if err != nil {
			return "", mapTransportError(err)
		}
		if err = mapHTTPError(resp, nil); err != nil {
			return "", err
		}
		return string(resp.Body()), nil
	})
}

// APIScriptFetcher reads index.js through the repository contents API. It is
// not subject to the anonymous raw host limits and can read private
// repositories the token has access to.
type APIScriptFetcher struct {
	client *gh.Client
	logger *logger.Logger
}

func NewAPIScriptFetcher(apiURL, token string, timeout time.Duration, log *logger.Logger) (*APIScriptFetcher, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}

	baseURL, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid github api url: %w", err)
	}

	client := gh.NewClient(&http.Client{Timeout: timeout}).WithAuthToken(token)
	client.BaseURL = baseURL

	return &APIScriptFetcher{client: client, logger: log}, nil
}

func (f *APIScriptFetcher) FetchScript(ctx context.Context, repo models.GitHubRepo) (string, error) {
	return fetchFirstRef(ctx, f.logger, repo, func(ref string) (string, error) {
		file, _, resp, err := f.client.Repositories.GetContents(ctx, repo.Owner, repo.Name, entryScript,
			&gh.RepositoryContentGetOptions{Ref: ref})
		if err != nil {
			return "", mapGitHubError(resp, err)
		}
		if file == nil {
			// index.js resolved to a directory listing
			return "", newRemoteError(http.StatusNotFound, entryScript+" is not a file")
		}
		return file.GetContent()
	})
}

func mapGitHubError(resp *gh.Response, err error) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		msg := ghErr.Message
		if msg == "" {
			msg = http.StatusText(ghErr.Response.StatusCode)
		}
		return newRemoteError(ghErr.Response.StatusCode, msg)
	}
	if resp != nil && resp.Response != nil {
		return newRemoteError(resp.StatusCode, err.Error())
	}
	return mapTransportError(err)
}

// fetchFirstRef calls fetch for every ref in scriptRefs and returns the first
// non-empty script. When every ref answered 404 (or an empty file) the
// result is ErrScriptNotFound, otherwise the last failure is returned.
func fetchFirstRef(ctx context.Context, log *logger.Logger, repo models.GitHubRepo, fetch func(ref string) (string, error)) (string, error) {
	var lastErr error
	allMissing := true

	for _, ref := range scriptRefs {
		content, err := fetch(ref)
		if err == nil && strings.TrimSpace(content) != "" {
			log.Debug().Str("func", "fetchFirstRef").Str("repo", repo.String()).Str("ref", ref).
				Int("bytes", len(content)).Msg("script fetched")
			return content, nil
		}
		if err != nil {
			lastErr = err
			if !errors.Is(err, ErrNotFound) {
				allMissing = false
			}
		}
		if ctx.Err() != nil {
			return "", mapTransportError(ctx.Err())
		}
	}

	if allMissing {
		return "", &RemoteError{
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("%s not found on main or master of %s", entryScript, repo),
			Err:        ErrScriptNotFound,
		}
	}
	return "", lastErr
}
