package seed

import (
	"fmt"
	"math/rand"
	"time"

	"blogwave/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var postCategories = []string{
	"technology", "travel", "food", "fitness", "lifestyle", "business", "education",
}

// Factory builds domain entities and persists them to the database.
// It is intended for development seeding and tests only.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUsers persists n generated users with the shared demo password.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	if n <= 0 {
		return nil, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:     gofakeit.Email(),
			Password:  string(hashed),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Bio:       gofakeit.Sentence(10),
			Website:   gofakeit.URL(),
			Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// BuildPost constructs a post for the given author without persisting it.
func (f *Factory) BuildPost(author *models.User, overrides ...func(*models.Post)) *models.Post {
	title := gofakeit.Sentence(5)
	allowComments := f.r.Intn(10) > 1 // most posts accept comments

	post := &models.Post{
		Title:         title,
		Content:       gofakeit.Paragraph(2, 4, 8, "\n"),
		Excerpt:       gofakeit.Sentence(12),
		Slug:          fmt.Sprintf("%s-%d", Slugify(title), gofakeit.Number(1000, 9999)),
		AuthorID:      author.ID,
		Status:        models.PostStatusPublished,
		Category:      postCategories[f.r.Intn(len(postCategories))],
		FeaturedImage: fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
		Tags:          fmt.Sprintf("%s,%s", gofakeit.Word(), gofakeit.Word()),
		AllowComments: &allowComments,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	if f.r.Intn(5) == 0 {
		post.Status = models.PostStatusDraft
	} else {
		publishedAt := post.CreatedAt.Add(time.Hour)
		post.PublishedAt = &publishedAt
	}

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePosts persists n generated posts spread across the given authors.
func (f *Factory) CreatePosts(authors []*models.User, n int) error {
	if n <= 0 || len(authors) == 0 {
		return nil
	}
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := authors[f.r.Intn(len(authors))]
		posts = append(posts, f.BuildPost(author))
	}
	return f.db.Create(&posts).Error
}

// CreateAnalytics persists a short daily history for each post.
func (f *Factory) CreateAnalytics(posts []*models.Post) error {
	for _, post := range posts {
		days := f.r.Intn(5) + 3
		for d := 0; d < days; d++ {
			views := gofakeit.Number(10, 500)
			postID := post.ID
			entry := &models.Analytics{
				PostID:         &postID,
				Views:          views,
				UniqueVisitors: gofakeit.Number(5, views),
				AvgTimeOnPage:  fmt.Sprintf("%d:%02d", gofakeit.Number(0, 9), gofakeit.Number(0, 59)),
				BounceRate:     gofakeit.Number(10, 90),
				Date:           time.Now().AddDate(0, 0, -d),
			}
			if err := f.db.Create(entry).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
