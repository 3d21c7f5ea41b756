package utils

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/somosmas/ong-api/model"
)

// Seed makes sure the fixed rows every deployment relies on exist: the
// two base roles, the roles.update grant on Admin, and the organization
// singleton. Safe to run on every boot.
func Seed(db *gorm.DB) error {
	admin := model.Role{ID: model.AdminRoleID, Name: "Admin"}
	if err := db.Where(model.Role{ID: model.AdminRoleID}).FirstOrCreate(&admin).Error; err != nil {
		return err
	}
	standard := model.Role{ID: model.UserRoleID, Name: "User"}
	if err := db.Where(model.Role{ID: model.UserRoleID}).FirstOrCreate(&standard).Error; err != nil {
		return err
	}

	perm := model.Permission{Name: model.PermissionRolesUpdate}
	if err := db.Where(model.Permission{Name: model.PermissionRolesUpdate}).FirstOrCreate(&perm).Error; err != nil {
		return err
	}
	if err := db.Model(&admin).Association("Permissions").Append(&perm); err != nil {
		return err
	}

	org := model.Organization{
		ID:               model.OrganizationID,
		Name:             "Org name",
		Logo:             "image-organization-seed.png",
		ShortDescription: "short description",
		LongDescription:  "long description",
		WelcomeText:      "welcome text",
		Address:          "address",
		Phone:            "phone",
		CellPhone:        "cell phone",
		FacebookURL:      "facebook url",
		LinkedinURL:      "linkedin url",
		InstagramURL:     "instagram url",
		TwitterURL:       "twitter url",
	}
	return db.Where(model.Organization{ID: model.OrganizationID}).FirstOrCreate(&org).Error
}

// SeedDemo fills an empty development database with sample content: one
// admin, five standard users and one row per content resource. Not run
// in production.
func SeedDemo(db *gorm.DB) error {
	if err := Seed(db); err != nil {
		return err
	}

	var adminRole, userRole model.Role
	if err := db.First(&adminRole, model.AdminRoleID).Error; err != nil {
		return err
	}
	if err := db.First(&userRole, model.UserRoleID).Error; err != nil {
		return err
	}

	hash, err := HashPassword("123456")
	if err != nil {
		return err
	}

	admin := model.User{
		Name:     "Admin",
		Email:    "admin@somosmas.org",
		Password: hash,
		Roles:    []*model.Role{&adminRole},
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	for i := 1; i <= 5; i++ {
		u := model.User{
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("user%d@somosmas.org", i),
			Password: hash,
			Roles:    []*model.Role{&userRole},
		}
		if err := db.Where(model.User{Email: u.Email}).FirstOrCreate(&u).Error; err != nil {
			return err
		}
	}

	category := model.Category{Name: "Category 1", Description: "Description of category 1", Image: "image-category-seed.png"}
	if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
		return err
	}

	samples := []interface{}{
		&model.Activity{Name: "Activity 1", Slug: "activity-1", Description: "Description of activity 1", Image: "image-activity-seed.png"},
		&model.News{Name: "News 1", Slug: "news-1", Content: "Content of news 1", Image: "image-news-seed.png", CategoryID: &category.ID},
		&model.Comment{Text: "Comment 1", Visible: true},
		&model.Contact{Name: "Contact 1", Email: "contact1@gmail.com", Phone: "11111", Message: "message of contact 1"},
		&model.Member{FullName: "Member 1", Description: "Description of member 1", Image: "image-member-seed.png", FacebookURL: "facebook url", LinkedinURL: "linkedin url"},
		&model.Project{Title: "Project 1", Description: "Description of project 1", Image: "image-project-seed.png", DueDate: "2023"},
		&model.Slide{Name: "Slide 1", Description: "Description of slide 1", Image: "image-slide-seed.png", Order: 1},
		&model.SocialMediaItem{Name: "Social media item 1", Image: "image-socialmediaitem-seed.png", URL: "url of social media item 1"},
		&model.Testimonial{Name: "Testimonial 1", Image: "image-testimonial-seed.png", Description: "Description of testimonial 1"},
	}
	for _, sample := range samples {
		if err := db.FirstOrCreate(sample).Error; err != nil {
			return err
		}
	}
	return nil
}
