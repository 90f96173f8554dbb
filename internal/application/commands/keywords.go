package commands

import (
	"context"
	"fmt"

	"gitlab.com/tozd/go/errors"

	"folderswap/internal/application"
	"folderswap/internal/domain"
)

// AddKeywordResult contains the result of registering a keyword
type AddKeywordResult struct {
	Keyword string
	Added   bool
	Message string
}

// AddKeywordCommand registers a keyword
type AddKeywordCommand struct {
	registry *application.KeywordRegistry
	Word     string
}

// NewAddKeywordCommand creates a new AddKeywordCommand
func NewAddKeywordCommand(registry *application.KeywordRegistry, word string) *AddKeywordCommand {
	return &AddKeywordCommand{registry: registry, Word: word}
}

// Execute runs the add keyword command
func (c *AddKeywordCommand) Execute(ctx context.Context) (*AddKeywordResult, error) {
	keyword := domain.NormalizeKeyword(c.Word)
	// Checked before Add so the message can say why nothing changed
	reason := c.registry.All().Check(keyword)

	added, err := c.registry.Add(ctx, keyword)
	if err != nil {
		return nil, err
	}

	result := &AddKeywordResult{Keyword: keyword, Added: added}
	switch {
	case added:
		result.Message = fmt.Sprintf("Registered %q", keyword)
	case errors.Is(reason, domain.ErrEmptyKeyword):
		result.Message = "Keyword is empty, nothing registered"
	default:
		result.Message = fmt.Sprintf("%q is already registered", keyword)
	}
	return result, nil
}

// RemoveKeywordResult contains the result of removing a keyword
type RemoveKeywordResult struct {
	Keyword string
	Removed bool
	Message string
}

// RemoveKeywordCommand removes a keyword from the registry
type RemoveKeywordCommand struct {
	registry *application.KeywordRegistry
	Word     string
}

// NewRemoveKeywordCommand creates a new RemoveKeywordCommand
func NewRemoveKeywordCommand(registry *application.KeywordRegistry, word string) *RemoveKeywordCommand {
	return &RemoveKeywordCommand{registry: registry, Word: word}
}

// Execute runs the remove keyword command
func (c *RemoveKeywordCommand) Execute(ctx context.Context) (*RemoveKeywordResult, error) {
	keyword := domain.NormalizeKeyword(c.Word)
	removed, err := c.registry.Remove(ctx, keyword)
	if err != nil {
		return nil, err
	}

	result := &RemoveKeywordResult{Keyword: keyword, Removed: removed}
	if removed {
		result.Message = fmt.Sprintf("Removed %q", keyword)
	} else {
		result.Message = fmt.Sprintf("%q is not registered", keyword)
	}
	return result, nil
}

// KeywordOrder selects how ListKeywordsCommand orders its output
type KeywordOrder string

const (
	OrderRegister KeywordOrder = "register"
	OrderAlpha    KeywordOrder = "alpha"
)

// ParseKeywordOrder parses a --sort value
func ParseKeywordOrder(s string) (KeywordOrder, error) {
	switch KeywordOrder(s) {
	case "", OrderRegister:
		return OrderRegister, nil
	case OrderAlpha, "alphabet", "alphabetical":
		return OrderAlpha, nil
	default:
		return "", &application.ValidationError{
			Field:   "sort",
			Message: fmt.Sprintf("unknown order %q (expected alpha or register)", s),
		}
	}
}

// ListKeywordsCommand lists keywords, optionally filtered and sorted
type ListKeywordsCommand struct {
	registry *application.KeywordRegistry
	Search   string
	Order    KeywordOrder
}

// NewListKeywordsCommand creates a new ListKeywordsCommand
func NewListKeywordsCommand(registry *application.KeywordRegistry, search string, order KeywordOrder) *ListKeywordsCommand {
	return &ListKeywordsCommand{registry: registry, Search: search, Order: order}
}

// Execute runs the list keywords command
func (c *ListKeywordsCommand) Execute(ctx context.Context) (domain.Keywords, error) {
	return c.registry.List(c.Search, c.Order == OrderAlpha), nil
}
