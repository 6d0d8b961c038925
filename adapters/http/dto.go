package http

import (
	"github.com/khoahotran/portfolio/internal/application/usecase/page"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
)

// Auth DTOs

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type ProfileNameRequest struct {
	DomainName string `json:"domainName" binding:"required"`
}

// Skill DTOs

type SkillCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SkillItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"min=0,max=100"`
}

type SkillLevelRequest struct {
	Level int `json:"level" binding:"min=0,max=100"`
}

// Section DTOs

type SectionOrderRequest struct {
	Order []string `json:"order" binding:"required"`
}

// Page DTOs

type PageDTO struct {
	Profile  domain.ProfileData     `json:"profile"`
	SEO      domain.SEOSettings     `json:"seo"`
	Links    []domain.CustomLink    `json:"customLinks"`
	Sections []page.RenderedSection `json:"sections"`
}

// Media DTOs

type MediaDTO struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
