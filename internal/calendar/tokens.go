package calendar

import (
	"context"
	"encoding/json"

	"golang.org/x/oauth2"

	"github.com/hireloop/scheduler/internal/interviews"
	"github.com/hireloop/scheduler/pkg/errors"
)

type AccountSource interface {
	GetByEmail(ctx context.Context, email, provider string) (*interviews.ConnectedAccount, error)
}

// NewAccountTokens resolves OAuth tokens from stored connected accounts.
func NewAccountTokens(src AccountSource) TokenStore {
	return accountTokens{src: src}
}

type accountTokens struct {
	src AccountSource
}

func (t accountTokens) Token(ctx context.Context, email string) (*oauth2.Token, error) {
	account, err := t.src.GetByEmail(ctx, email, ProviderGoogle)
	if err != nil {
		return nil, errors.WrapFail(err, "look up connected account")
	}
	if account == nil {
		return nil, errors.Errorf("no connected account for %q", email)
	}

	var tok oauth2.Token
	err = json.Unmarshal(account.Token, &tok)
	if err != nil {
		return nil, errors.WrapFail(err, "decode oauth token")
	}

	return &tok, nil
}
