package models

import "slices"

// SettingsID is the fixed key of the singleton settings document.
const SettingsID = "site"

// TeamMember is a person shown on the "nosotros" page
type TeamMember struct {
	Role        string `json:"role"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ProcessStep is one step of the work process. Step is an ordinal typed by
// the admin; duplicates and gaps are kept as entered and display follows
// storage order.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Hero struct {
	Headline         string `json:"headline"`
	Subheadline      string `json:"subheadline"`
	PrimaryCtaText   string `json:"primaryCtaText"`
	PrimaryCtaHref   string `json:"primaryCtaHref"`
	SecondaryCtaText string `json:"secondaryCtaText"`
	SecondaryCtaHref string `json:"secondaryCtaHref"`
}

type Nosotros struct {
	Historia     string        `json:"historia"`
	Mision       string        `json:"mision"`
	Vision       string        `json:"vision"`
	Valores      []string      `json:"valores"`
	TeamMembers  []TeamMember  `json:"teamMembers"`
	ProcessSteps []ProcessStep `json:"processSteps"`
}

// Colors holds hex color strings. Values are not validated.
type Colors struct {
	Primary            string `json:"primary"`
	Accent             string `json:"accent"`
	AccentHover        string `json:"accentHover"`
	BackgroundLight    string `json:"backgroundLight"`
	TextDark           string `json:"textDark"`
	SocialButtons      string `json:"socialButtons,omitempty"`
	SocialButtonsHover string `json:"socialButtonsHover,omitempty"`
}

// SiteSettings is the singleton configuration document of the site
type SiteSettings struct {
	Phones       []string    `json:"phones"`
	Emails       []string    `json:"emails"`
	WhatsApp     string      `json:"whatsapp"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	ServiceAreas []string    `json:"serviceAreas"`
	Social       SocialLinks `json:"social"`
	Hero         Hero        `json:"hero"`
	Nosotros     Nosotros    `json:"nosotros"`
	Colors       Colors      `json:"colors"`
}

// HeroPatch and the other *Patch types carry only the keys the client sent.
// A nil field means "key absent, keep the stored value".
type HeroPatch struct {
	Headline         *string `json:"headline,omitempty"`
	Subheadline      *string `json:"subheadline,omitempty"`
	PrimaryCtaText   *string `json:"primaryCtaText,omitempty"`
	PrimaryCtaHref   *string `json:"primaryCtaHref,omitempty"`
	SecondaryCtaText *string `json:"secondaryCtaText,omitempty"`
	SecondaryCtaHref *string `json:"secondaryCtaHref,omitempty"`
}

type NosotrosPatch struct {
	Historia     *string        `json:"historia,omitempty"`
	Mision       *string        `json:"mision,omitempty"`
	Vision       *string        `json:"vision,omitempty"`
	Valores      *[]string      `json:"valores,omitempty"`
	TeamMembers  *[]TeamMember  `json:"teamMembers,omitempty"`
	ProcessSteps *[]ProcessStep `json:"processSteps,omitempty"`
}

type ColorsPatch struct {
	Primary            *string `json:"primary,omitempty"`
	Accent             *string `json:"accent,omitempty"`
	AccentHover        *string `json:"accentHover,omitempty"`
	BackgroundLight    *string `json:"backgroundLight,omitempty"`
	TextDark           *string `json:"textDark,omitempty"`
	SocialButtons      *string `json:"socialButtons,omitempty"`
	SocialButtonsHover *string `json:"socialButtonsHover,omitempty"`
}

// SettingsPatch is a partial SiteSettings as sent by the admin panel.
// An array pointing to an empty slice is a value (it wipes the list) and is
// not the same as a nil pointer (key absent).
type SettingsPatch struct {
	Phones       *[]string      `json:"phones,omitempty"`
	Emails       *[]string      `json:"emails,omitempty"`
	WhatsApp     *string        `json:"whatsapp,omitempty"`
	Address      *string        `json:"address,omitempty"`
	City         *string        `json:"city,omitempty"`
	ServiceAreas *[]string      `json:"serviceAreas,omitempty"`
	Social       *SocialLinks   `json:"social,omitempty"`
	Hero         *HeroPatch     `json:"hero,omitempty"`
	Nosotros     *NosotrosPatch `json:"nosotros,omitempty"`
	Colors       *ColorsPatch   `json:"colors,omitempty"`
}

// Apply returns s with p merged in: scalars and arrays present in p replace
// the stored ones wholesale, nested objects are merged one level deep.
// s is not modified.
func (s SiteSettings) Apply(p SettingsPatch) SiteSettings {
	out := s.Clone()

	setString(&out.WhatsApp, p.WhatsApp)
	setString(&out.Address, p.Address)
	setString(&out.City, p.City)
	setSlice(&out.Phones, p.Phones)
	setSlice(&out.Emails, p.Emails)
	setSlice(&out.ServiceAreas, p.ServiceAreas)

	if p.Social != nil {
		out.Social = out.Social.Merge(*p.Social)
	}
	if h := p.Hero; h != nil {
		setString(&out.Hero.Headline, h.Headline)
		setString(&out.Hero.Subheadline, h.Subheadline)
		setString(&out.Hero.PrimaryCtaText, h.PrimaryCtaText)
		setString(&out.Hero.PrimaryCtaHref, h.PrimaryCtaHref)
		setString(&out.Hero.SecondaryCtaText, h.SecondaryCtaText)
		setString(&out.Hero.SecondaryCtaHref, h.SecondaryCtaHref)
	}
	if n := p.Nosotros; n != nil {
		setString(&out.Nosotros.Historia, n.Historia)
		setString(&out.Nosotros.Mision, n.Mision)
		setString(&out.Nosotros.Vision, n.Vision)
		setSlice(&out.Nosotros.Valores, n.Valores)
		setSlice(&out.Nosotros.TeamMembers, n.TeamMembers)
		setSlice(&out.Nosotros.ProcessSteps, n.ProcessSteps)
	}
	if c := p.Colors; c != nil {
		setString(&out.Colors.Primary, c.Primary)
		setString(&out.Colors.Accent, c.Accent)
		setString(&out.Colors.AccentHover, c.AccentHover)
		setString(&out.Colors.BackgroundLight, c.BackgroundLight)
		setString(&out.Colors.TextDark, c.TextDark)
		setString(&out.Colors.SocialButtons, c.SocialButtons)
		setString(&out.Colors.SocialButtonsHover, c.SocialButtonsHover)
	}

	return out.Normalize()
}

// Clone returns a deep copy so callers can mutate slices freely.
func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.Phones = slices.Clone(s.Phones)
	out.Emails = slices.Clone(s.Emails)
	out.ServiceAreas = slices.Clone(s.ServiceAreas)
	out.Social = s.Social.Clone()
	out.Nosotros.Valores = slices.Clone(s.Nosotros.Valores)
	out.Nosotros.TeamMembers = slices.Clone(s.Nosotros.TeamMembers)
	out.Nosotros.ProcessSteps = slices.Clone(s.Nosotros.ProcessSteps)
	return out
}

// Normalize replaces nil lists with empty ones so they encode as [] rather
// than null.
func (s SiteSettings) Normalize() SiteSettings {
	s.Phones = nonNil(s.Phones)
	s.Emails = nonNil(s.Emails)
	s.ServiceAreas = nonNil(s.ServiceAreas)
	s.Nosotros.Valores = nonNil(s.Nosotros.Valores)
	s.Nosotros.TeamMembers = nonNil(s.Nosotros.TeamMembers)
	s.Nosotros.ProcessSteps = nonNil(s.Nosotros.ProcessSteps)
	return s
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setSlice[T any](dst *[]T, src *[]T) {
	if src != nil {
		*dst = nonNil(slices.Clone(*src))
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
