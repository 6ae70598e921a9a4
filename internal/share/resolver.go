package share

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLResolverOptions configures the go-urlkit backed share link resolver.
type URLResolverOptions struct {
	Manager    *urlkit.RouteManager
	Group      string
	Route      string
	TokenParam string
}

// URLResolver builds public share URLs from tokens using a go-urlkit
// RouteManager.
type URLResolver struct {
	manager    *urlkit.RouteManager
	group      string
	route      string
	tokenParam string

	mu     sync.RWMutex
	cached *urlkit.Group
}

// NewURLResolver constructs a resolver. Group defaults to "share", route to
// "recipe", and the token parameter to "token".
func NewURLResolver(opts URLResolverOptions) *URLResolver {
	if opts.Group == "" {
		opts.Group = "share"
	}
	if opts.Route == "" {
		opts.Route = "recipe"
	}
	if opts.TokenParam == "" {
		opts.TokenParam = "token"
	}
	return &URLResolver{
		manager:    opts.Manager,
		group:      strings.TrimSpace(opts.Group),
		route:      strings.TrimSpace(opts.Route),
		tokenParam: opts.TokenParam,
	}
}

// Resolve returns the public URL for a share token, or an empty string when
// no route manager is configured.
func (r *URLResolver) Resolve(token string) (string, error) {
	if r == nil || r.manager == nil {
		return "", nil
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("share: token is required")
	}

	group, err := r.groupRef()
	if err != nil {
		return "", err
	}

	builder, err := r.safeBuilder(group)
	if err != nil {
		return "", err
	}
	builder.WithParam(r.tokenParam, token)

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("share: building url: %w", err)
	}
	return url, nil
}

func (r *URLResolver) groupRef() (*urlkit.Group, error) {
	r.mu.RLock()
	group := r.cached
	r.mu.RUnlock()
	if group != nil {
		return group, nil
	}

	group, err := lookupGroup(r.manager, r.group)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cached = group
	r.mu.Unlock()
	return group, nil
}

func (r *URLResolver) safeBuilder(group *urlkit.Group) (*urlkit.Builder, error) {
	if group == nil {
		return nil, fmt.Errorf("share: urlkit group is nil")
	}
	var (
		builder *urlkit.Builder
		err     error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("share: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(r.route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (*urlkit.Group, error) {
	if manager == nil {
		return nil, fmt.Errorf("share: route manager not configured")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("share: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}
