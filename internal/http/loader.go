package httpapi

import (
	"context"

	"go.uber.org/zap"

	"github.com/fairyhunter13/product-card-showcase/internal/catalog"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
	"github.com/fairyhunter13/product-card-showcase/internal/store"
)

// LoadInto runs the one catalog load for the server and resolves st with
// its outcome. A load cut short by ctx leaves st in Loading and returns nil.
func LoadInto(ctx context.Context, st *store.Store, f catalog.Fetcher) error {
	var seq catalog.Sequencer
	task := catalog.Start(ctx, &seq, f)
	defer task.Cancel()

	res := <-task.Done()
	if res.Cancelled() {
		obs.Logger.Info("catalog_load_cancelled", zap.Uint64("token", res.Token))
		return nil
	}
	if err := st.Resolve(res.Products, res.Err); err != nil {
		return err
	}
	obs.Logger.Info("view_state_changed",
		zap.String("state", st.State().Kind().String()),
		zap.Int("products", len(res.Products)),
	)
	return nil
}
