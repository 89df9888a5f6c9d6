package models

// ProjectStatus is the development state of a project.
type ProjectStatus string

const (
	ProjectStatusActive      ProjectStatus = "Active"
	ProjectStatusCompleted   ProjectStatus = "Completed"
	ProjectStatusDevelopment ProjectStatus = "Development"
	ProjectStatusResearch    ProjectStatus = "Research"
	ProjectStatusBeta        ProjectStatus = "Beta"
)

// ProjectStatuses lists every known project status.
var ProjectStatuses = []ProjectStatus{ProjectStatusActive, ProjectStatusCompleted, ProjectStatusDevelopment, ProjectStatusResearch, ProjectStatusBeta}

// ProjectCategory groups projects by discipline.
type ProjectCategory string

const (
	ProjectCategoryHardware ProjectCategory = "Hardware"
	ProjectCategorySoftware ProjectCategory = "Software"
	ProjectCategoryMixed    ProjectCategory = "Mixed"
	ProjectCategoryAIML     ProjectCategory = "AI/ML"
	ProjectCategoryRobotics ProjectCategory = "Robotics"
	ProjectCategoryIoT      ProjectCategory = "IoT"
)

// ProjectCategories lists every known category.
var ProjectCategories = []ProjectCategory{ProjectCategoryHardware, ProjectCategorySoftware, ProjectCategoryMixed, ProjectCategoryAIML, ProjectCategoryRobotics, ProjectCategoryIoT}

// Project is one club project. Link fields are nil when the project has no
// such resource.
type Project struct {
	ID          int             `db:"id" json:"id" validate:"required"`
	Name        string          `db:"name" json:"name" validate:"required"`
	Description string          `db:"description" json:"description" validate:"required"`
	Image       string          `db:"image" json:"image" validate:"required"`
	StartDate   string          `db:"start_date" json:"startDate" validate:"required"`
	EndDate     *string         `db:"end_date" json:"endDate,omitempty" validate:"omitempty,min=1"`
	Status      ProjectStatus   `db:"status" json:"status" validate:"required,project_status"`
	Category    ProjectCategory `db:"category" json:"category" validate:"required,project_category"`
	TechStack   []string        `db:"-" json:"techStack" validate:"dive,required"`
	GitHubURL   *string         `db:"github_url" json:"githubUrl,omitempty" validate:"omitempty,url"`
	DemoURL     *string         `db:"demo_url" json:"demoUrl,omitempty" validate:"omitempty,url"`
	DocsURL     *string         `db:"docs_url" json:"docsUrl,omitempty" validate:"omitempty,url"`
}

// Valid reports whether the status is a member of the known set.
func (s ProjectStatus) Valid() bool {
	_, ok := s.Treatment()
	return ok
}

// Valid reports whether the category is a member of the known set.
func (c ProjectCategory) Valid() bool {
	_, ok := c.Treatment()
	return ok
}
