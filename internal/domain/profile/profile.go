package profile

import (
	"context"
	"errors"
	"fmt"
)

// Partition keys. Each one holds an independent JSON document.
const (
	KeyBasicInfo    = "@portfolio_profile"
	KeyEducation    = "@portfolio_education"
	KeySkills       = "@portfolio_skills"
	KeyProjects     = "@portfolio_projects"
	KeyTestimonials = "@portfolio_testimonials"
	KeyCertificates = "@portfolio_certificates"
	KeyContactInfo  = "@portfolio_contact_info"
)

// PartitionKeys lists every key owned by the profile store.
var PartitionKeys = []string{
	KeyBasicInfo,
	KeyEducation,
	KeySkills,
	KeyProjects,
	KeyTestimonials,
	KeyCertificates,
	KeyContactInfo,
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Details     string `json:"details"`
}

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Icon        string `json:"icon"`
}

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Technologies    []string `json:"technologies"`
	Link            string   `json:"link"`
	ValueAdded      string   `json:"valueAdded"`
	Image           string   `json:"image"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Relation string `json:"relation"`
}

type Certificate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
	VerifyURL   string `json:"verifyUrl"`
}

type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	ResumeURL string `json:"resumeUrl,omitempty"`
}

// BasicInfo is the shape stored under KeyBasicInfo.
type BasicInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

type Profile struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Bio          string        `json:"bio"`
	ProfileImage string        `json:"profileImage"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Testimonials []Testimonial `json:"testimonials"`
	Certificates []Certificate `json:"certificates"`
	ContactInfo  ContactInfo   `json:"contactInfo"`
}

// Empty is the aggregate with every list present but empty.
func Empty() *Profile {
	p := &Profile{}
	p.Normalize()
	return p
}

func (p *Profile) BasicInfo() BasicInfo {
	return BasicInfo{Name: p.Name, Title: p.Title, Bio: p.Bio, ProfileImage: p.ProfileImage}
}

func (p *Profile) SetBasicInfo(b BasicInfo) {
	p.Name = b.Name
	p.Title = b.Title
	p.Bio = b.Bio
	p.ProfileImage = b.ProfileImage
}

// Normalize replaces nil lists with empty ones so consumers never see an
// absent sequence.
func (p *Profile) Normalize() {
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
	if p.Testimonials == nil {
		p.Testimonials = []Testimonial{}
	}
	if p.Certificates == nil {
		p.Certificates = []Certificate{}
	}
}

var ErrDuplicateID = errors.New("duplicate item id")

// AssignIDs gives every list item without an id a fresh one from newID.
func (p *Profile) AssignIDs(newID func() string) {
	for i := range p.Education {
		if p.Education[i].ID == "" {
			p.Education[i].ID = newID()
		}
	}
	for i := range p.Skills {
		if p.Skills[i].ID == "" {
			p.Skills[i].ID = newID()
		}
	}
	for i := range p.Projects {
		if p.Projects[i].ID == "" {
			p.Projects[i].ID = newID()
		}
	}
	for i := range p.Testimonials {
		if p.Testimonials[i].ID == "" {
			p.Testimonials[i].ID = newID()
		}
	}
	for i := range p.Certificates {
		if p.Certificates[i].ID == "" {
			p.Certificates[i].ID = newID()
		}
	}
}

// Validate checks that ids are unique within each list. The same id may
// appear in two different lists.
func (p *Profile) Validate() error {
	check := func(list string, ids []string) error {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				return fmt.Errorf("%w: %s id '%s'", ErrDuplicateID, list, id)
			}
			seen[id] = struct{}{}
		}
		return nil
	}

	ids := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		ids = append(ids, e.ID)
	}
	if err := check("education", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, s := range p.Skills {
		ids = append(ids, s.ID)
	}
	if err := check("skill", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, pr := range p.Projects {
		ids = append(ids, pr.ID)
	}
	if err := check("project", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, t := range p.Testimonials {
		ids = append(ids, t.ID)
	}
	if err := check("testimonial", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, c := range p.Certificates {
		ids = append(ids, c.ID)
	}
	return check("certificate", ids)
}

// LoadState reports what Load saw in the store.
type LoadState int

const (
	// LoadEmpty means every partition read succeeded and none exists.
	LoadEmpty LoadState = iota
	LoadFound
	// LoadDegraded means at least one partition read failed. The returned
	// profile holds empty values for those partitions and must not be saved
	// back over the stored one.
	LoadDegraded
)

func (s LoadState) String() string {
	switch s {
	case LoadEmpty:
		return "empty"
	case LoadFound:
		return "found"
	default:
		return "degraded"
	}
}

type Repository interface {
	// Save replaces every partition. Partial writes are possible on failure.
	Save(ctx context.Context, p *Profile) error
	// Load never fails; unreadable partitions come back empty and are
	// reported through LoadDegraded.
	Load(ctx context.Context) (*Profile, LoadState)
	Clear(ctx context.Context) error
}
