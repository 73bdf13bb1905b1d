package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rechange/models"
)

// GalleryRepository 는 성공한 생성 결과의 전역 목록이다. 추가만 가능하고
// 세션 삭제와 무관하게 유지된다.
type GalleryRepository struct {
	mu    sync.Mutex
	items []models.GalleryItem // most-recent-first
}

func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{}
}

// Add prepends a new item and returns it with its generated id.
func (r *GalleryRepository) Add(imageURL, prompt string) models.GalleryItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := models.GalleryItem{
		ID:        uuid.NewString(),
		ImageURL:  imageURL,
		Prompt:    prompt,
		CreatedAt: time.Now(),
	}
	r.items = append([]models.GalleryItem{item}, r.items...)
	return item
}

// List returns a snapshot of all items, most-recent-first.
func (r *GalleryRepository) List() []models.GalleryItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.GalleryItem(nil), r.items...)
}
