package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-workers-bot/models"
)

const (
	FieldWorkerName = "worker_name"
	FieldRepoURL    = "repo_url"
	FieldToken      = "token"
	FieldAccountID  = "account_id"
	FieldScript     = "script"
)

// MinTokenLength is the shortest string accepted as a platform API token.
const MinTokenLength = 20

var (
	workerNameRegexp = regexp.MustCompile(`^[a-z0-9-]{1,63}$`)
	repoURLRegexp    = regexp.MustCompile(`^https?://github\.com/([\w-]+)/([\w-]+)(\.git)?$`)
)

// ValidateWorkerName checks name against ^[a-z0-9-]{1,63}$.
func ValidateWorkerName(name string) error {
	if !workerNameRegexp.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidWorkerName, name)
	}
	return nil
}

// ValidateToken rejects tokens shorter than [MinTokenLength] characters.
func ValidateToken(token string) error {
	if len(strings.TrimSpace(token)) < MinTokenLength {
		return ErrTokenTooShort
	}
	return nil
}

// ParseRepoURL validates raw as https://github.com/{owner}/{repo}[.git]
// and extracts owner and repository name.
func ParseRepoURL(raw string) (models.GitHubRepo, error) {
	m := repoURLRegexp.FindStringSubmatch(raw)
	if m == nil {
		return models.GitHubRepo{}, fmt.Errorf("%w: %q", ErrInvalidRepoURL, raw)
	}
	return models.GitHubRepo{Owner: m[1], Name: m[2]}, nil
}

// InputValidator implements [Validator] for the values entered during
// the conversation flows.
type InputValidator struct{}

func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate dispatches on the type of obj:
//   - models.Credential: token length and non-empty account id.
//   - models.ScriptUpload: worker name and non-empty script.
//   - string: exactly one field selects the rule (worker_name, repo_url or token).
//
// Fields restrict struct validation to the named rules.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(value, fields...)
	case *models.Credential:
		return v.validateCredential(*value, fields...)

	case models.ScriptUpload:
		return v.validateScriptUpload(value, fields...)
	case *models.ScriptUpload:
		return v.validateScriptUpload(*value, fields...)

	case string:
		return v.validateString(value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InputValidator) validateCredential(credential models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldAccountID}
	}

	for _, field := range fields {
		switch field {
		case FieldToken:
			if err := ValidateToken(credential.Token); err != nil {
				return err
			}
		case FieldAccountID:
			if strings.TrimSpace(credential.AccountID) == "" {
				return ErrEmptyAccountID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *InputValidator) validateScriptUpload(upload models.ScriptUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWorkerName, FieldScript}
	}

	for _, field := range fields {
		switch field {
		case FieldWorkerName:
			if err := ValidateWorkerName(upload.Name); err != nil {
				return err
			}
		case FieldScript:
			if strings.TrimSpace(upload.Content) == "" {
				return ErrEmptyScript
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *InputValidator) validateString(value string, fields ...string) error {
	if len(fields) != 1 {
		return fmt.Errorf("%w: a string needs exactly one field", ErrUnknownField)
	}

	switch fields[0] {
	case FieldWorkerName:
		return ValidateWorkerName(value)
	case FieldRepoURL:
		_, err := ParseRepoURL(value)
		return err
	case FieldToken:
		return ValidateToken(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, fields[0])
	}
}
