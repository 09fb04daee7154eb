package seed

import (
	"fmt"
	"os"
	"time"

	"blogwave/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixtures describes deterministic seed data loaded from a YAML file.
// Posts reference their author by username and comments reference their post
// by slug, so fixtures stay readable and order-independent of database IDs.
type Fixtures struct {
	Users []struct {
		Username  string `yaml:"username"`
		Email     string `yaml:"email"`
		Password  string `yaml:"password"`
		FirstName string `yaml:"firstName"`
		LastName  string `yaml:"lastName"`
		Bio       string `yaml:"bio"`
	} `yaml:"users"`
	Posts []struct {
		Title         string `yaml:"title"`
		Slug          string `yaml:"slug"`
		Content       string `yaml:"content"`
		Excerpt       string `yaml:"excerpt"`
		Author        string `yaml:"author"`
		Status        string `yaml:"status"`
		Category      string `yaml:"category"`
		Tags          string `yaml:"tags"`
		AllowComments *bool  `yaml:"allowComments"`
	} `yaml:"posts"`
	Comments []struct {
		Post    string `yaml:"post"`
		Author  string `yaml:"author"`
		Content string `yaml:"content"`
		Status  string `yaml:"status"`
	} `yaml:"comments"`
}

// LoadFixtures parses a fixtures YAML file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// ApplyFixtures loads the file at path and inserts its contents.
func ApplyFixtures(db *gorm.DB, path string) error {
	f, err := LoadFixtures(path)
	if err != nil {
		return err
	}
	return f.Apply(db)
}

// Apply inserts the fixture data in dependency order inside one transaction.
func (f *Fixtures) Apply(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		usersByName := make(map[string]*models.User, len(f.Users))
		for _, fu := range f.Users {
			password := fu.Password
			if password == "" {
				password = "password123"
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := &models.User{
				Username:  fu.Username,
				Email:     fu.Email,
				Password:  string(hashed),
				FirstName: fu.FirstName,
				LastName:  fu.LastName,
				Bio:       fu.Bio,
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("fixture user %s: %w", fu.Username, err)
			}
			usersByName[fu.Username] = user
		}

		postsBySlug := make(map[string]*models.Post, len(f.Posts))
		for _, fp := range f.Posts {
			author, ok := usersByName[fp.Author]
			if !ok {
				return fmt.Errorf("fixture post %q references unknown author %q", fp.Title, fp.Author)
			}
			status := fp.Status
			if status == "" {
				status = models.PostStatusDraft
			}
			if !models.ValidPostStatus(status) {
				return fmt.Errorf("fixture post %q has invalid status %q", fp.Title, status)
			}
			slug := fp.Slug
			if slug == "" {
				slug = Slugify(fp.Title)
			}
			post := &models.Post{
				Title:         fp.Title,
				Content:       fp.Content,
				Excerpt:       fp.Excerpt,
				Slug:          slug,
				AuthorID:      author.ID,
				Status:        status,
				Category:      fp.Category,
				Tags:          fp.Tags,
				AllowComments: fp.AllowComments,
			}
			if status == models.PostStatusPublished {
				now := time.Now()
				post.PublishedAt = &now
			}
			if err := tx.Create(post).Error; err != nil {
				return fmt.Errorf("fixture post %q: %w", fp.Title, err)
			}
			postsBySlug[slug] = post
		}

		for _, fc := range f.Comments {
			post, ok := postsBySlug[fc.Post]
			if !ok {
				return fmt.Errorf("fixture comment references unknown post %q", fc.Post)
			}
			author, ok := usersByName[fc.Author]
			if !ok {
				return fmt.Errorf("fixture comment references unknown author %q", fc.Author)
			}
			status := fc.Status
			if status == "" {
				status = models.CommentStatusPending
			}
			if !models.ValidCommentStatus(status) {
				return fmt.Errorf("fixture comment has invalid status %q", status)
			}
			comment := &models.Comment{
				Content:  fc.Content,
				PostID:   post.ID,
				AuthorID: author.ID,
				Status:   status,
			}
			if err := tx.Create(comment).Error; err != nil {
				return fmt.Errorf("fixture comment on %q: %w", fc.Post, err)
			}
		}
		return nil
	})
}
