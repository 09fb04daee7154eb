// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"blogwave/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumExtraUsers int
	NumExtraPosts int
	ShouldClean   bool
}

type demoUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

type demoPost struct {
	Title         string
	Excerpt       string
	Content       string
	Category      string
	FeaturedImage string
	Author        string
}

var demoUsers = []demoUser{
	{Username: "techwriter", Email: "tech@example.com", FirstName: "Alex", LastName: "Chen"},
	{Username: "travelblogger", Email: "travel@example.com", FirstName: "Sofia", LastName: "Rodriguez"},
	{Username: "foodielover", Email: "food@example.com", FirstName: "James", LastName: "Wilson"},
	{Username: "fitnessguru", Email: "fitness@example.com", FirstName: "Emma", LastName: "Taylor"},
}

var demoPosts = []demoPost{
	{
		Title:         "The Future of AI in Everyday Life",
		Excerpt:       "Exploring how artificial intelligence is transforming our daily experiences and what to expect in the coming years.",
		Content:       "<h2>AI is Everywhere</h2><p>From voice assistants to recommendation algorithms, artificial intelligence has become an integral part of our daily lives.</p>",
		Category:      "technology",
		FeaturedImage: "https://images.unsplash.com/photo-1677442135128-8cd9d4c93474",
		Author:        "techwriter",
	},
	{
		Title:         "Building Scalable Web Applications: Best Practices",
		Excerpt:       "Learn the essential strategies and techniques for developing web applications that can handle growing user bases.",
		Content:       "<h2>Scalability Challenges</h2><p>As web applications grow in popularity, they face numerous challenges related to performance, reliability, and maintainability.</p>",
		Category:      "technology",
		FeaturedImage: "https://images.unsplash.com/photo-1517694712202-14dd9538aa97",
		Author:        "techwriter",
	},
	{
		Title:         "Hidden Gems of Southeast Asia",
		Excerpt:       "Discover lesser-known but breathtaking destinations across Southeast Asia that offer authentic experiences away from the tourist crowds.",
		Content:       "<h2>Beyond the Tourist Trail</h2><p>Southeast Asia offers countless hidden treasures waiting to be discovered.</p>",
		Category:      "travel",
		FeaturedImage: "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b",
		Author:        "travelblogger",
	},
	{
		Title:         "Sustainable Travel: Exploring Without Harming",
		Excerpt:       "Practical tips and strategies for reducing your environmental impact while still enjoying enriching travel experiences.",
		Content:       "<h2>Travel Consciously</h2><p>As global tourism increases, so does its environmental impact.</p>",
		Category:      "travel",
		FeaturedImage: "https://images.unsplash.com/photo-1506197603052-3cc9c3a201bd",
		Author:        "travelblogger",
	},
	{
		Title:         "The Art of Fermentation: A Beginners Guide",
		Excerpt:       "Learn how to create delicious and nutritious fermented foods at home with simple ingredients and basic equipment.",
		Content:       "<h2>Fermentation Fundamentals</h2><p>Fermentation is an ancient food preservation technique that enhances flavors and nutritional benefits.</p>",
		Category:      "food",
		FeaturedImage: "https://images.unsplash.com/photo-1636605083726-4de4b0c64e43",
		Author:        "foodielover",
	},
	{
		Title:         "Building Strength After 40: Adapting Your Fitness Routine",
		Excerpt:       "Practical strategies for maintaining and building strength as you age, with adjustments to protect joints and prevent injury.",
		Content:       "<h2>Strength Has No Age Limit</h2><p>Contrary to common belief, you can continue building strength well into your 40s, 50s, and beyond.</p>",
		Category:      "fitness",
		FeaturedImage: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
		Author:        "fitnessguru",
	},
}

var sampleComments = []string{
	"Great article! This really helped me understand the topic better.",
	"I've been looking for information like this. Thanks for sharing your expertise!",
	"Have you considered writing a follow-up piece on this subject? I'd love to learn more.",
	"This is exactly what I needed to read today. Very insightful.",
	"I disagree with some points here, but it's a well-written article nonetheless.",
	"Sharing this with my network. Really valuable information!",
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9\s-]`)
var slugSpaceRe = regexp.MustCompile(`\s+`)

// Slugify derives a URL-safe slug from a post title.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(strings.TrimSpace(s), "-")
	return s
}

// Seed populates the database with demo users, posts, comments, and analytics.
// It is idempotent: if the demo users already exist, it does nothing.
func Seed(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	var existing models.User
	err := db.Where("username = ?", demoUsers[0].Username).First(&existing).Error
	if err == nil {
		log.Println("Database already seeded, skipping seed process")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Seeding database with demo users and posts...")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	usersByName := make(map[string]*models.User, len(demoUsers))
	for _, du := range demoUsers {
		user := &models.User{
			Username:  du.Username,
			Email:     du.Email,
			Password:  string(hashed),
			FirstName: du.FirstName,
			LastName:  du.LastName,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("create demo user %s: %w", du.Username, err)
		}
		usersByName[du.Username] = user
	}
	log.Printf("created %d demo users", len(usersByName))

	now := time.Now()
	allowComments := true
	var posts []*models.Post
	for _, dp := range demoPosts {
		author, ok := usersByName[dp.Author]
		if !ok {
			continue
		}
		publishedAt := now
		post := &models.Post{
			Title:         dp.Title,
			Content:       dp.Content,
			Excerpt:       dp.Excerpt,
			Slug:          Slugify(dp.Title),
			AuthorID:      author.ID,
			Status:        models.PostStatusPublished,
			Category:      dp.Category,
			FeaturedImage: dp.FeaturedImage,
			AllowComments: &allowComments,
			PublishedAt:   &publishedAt,
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("create demo post %q: %w", dp.Title, err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d demo posts", len(posts))

	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	userList := make([]*models.User, 0, len(usersByName))
	for _, u := range usersByName {
		userList = append(userList, u)
	}

	for _, post := range posts {
		count := r.Intn(3) + 1
		for i := 0; i < count; i++ {
			comment := &models.Comment{
				Content:  sampleComments[r.Intn(len(sampleComments))],
				PostID:   post.ID,
				AuthorID: userList[r.Intn(len(userList))].ID,
				Status:   models.CommentStatusApproved,
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("create demo comment: %w", err)
			}
		}
	}

	factory := NewFactory(db)
	if opts.NumExtraUsers > 0 || opts.NumExtraPosts > 0 {
		extraUsers, err := factory.CreateUsers(opts.NumExtraUsers)
		if err != nil {
			return fmt.Errorf("create extra users: %w", err)
		}
		authors := append(userList, extraUsers...)
		if err := factory.CreatePosts(authors, opts.NumExtraPosts); err != nil {
			return fmt.Errorf("create extra posts: %w", err)
		}
	}
	if err := factory.CreateAnalytics(posts); err != nil {
		return fmt.Errorf("create analytics: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, analytics, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
