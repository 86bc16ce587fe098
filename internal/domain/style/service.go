package style

import "context"

type StyleService interface {
	Create(ctx context.Context, req CreateStyleRequest) (StyleResponse, error)
	Get(ctx context.Context, id string) (StyleResponse, error)
	List(ctx context.Context) ([]StyleResponse, error)
	Update(ctx context.Context, req UpdateStyleRequest) error
	Delete(ctx context.Context, id string) error
}
