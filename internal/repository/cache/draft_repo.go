package cache

import (
	"fmt"
	"net/http"

	"uniforms-pos/internal/models"
)

// DraftCacheRepo holds open drafts. With a TTL configured, a draft left
// untouched for longer than the TTL is discarded.
type DraftCacheRepo struct {
	cch KV
}

func NewDraftCache(cch KV) *DraftCacheRepo {
	return &DraftCacheRepo{cch: cch}
}

func (r *DraftCacheRepo) PutDraft(d *models.OrderDraft) {
	r.cch.Put(d.ID, d.Clone())
}

func (r *DraftCacheRepo) GetDraft(id string) (*models.OrderDraft, error) {
	v, ok := r.cch.Get(id)
	if !ok {
		return nil, NewErrorHandler(fmt.Errorf("draft %s not found", id), http.StatusNotFound)
	}
	d, ok := v.(*models.OrderDraft)
	if !ok {
		return nil, NewErrorHandler(fmt.Errorf("failed to convert draft %s to its struct", id),
			http.StatusInternalServerError)
	}
	return d.Clone(), nil
}

func (r *DraftCacheRepo) DeleteDraft(id string) {
	r.cch.Delete(id)
}
