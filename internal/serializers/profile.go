package serializers

import (
	"context"

	"fireside/internal/models"
	"fireside/internal/repository"
)

// ProfileIn is the inbound profile representation. UserProfile is accepted
// in the payload for wire compatibility but is read-only: the owner is
// always the authenticated caller.
type ProfileIn struct {
	NickName    string `json:"nickName" validate:"required,max=20"`
	UserProfile uint   `json:"userProfile"`
	Img         string `json:"img"`
}

// ProfileRep is the outbound profile representation.
type ProfileRep struct {
	ID          uint   `json:"id"`
	NickName    string `json:"nickName"`
	UserProfile uint   `json:"userProfile"`
	CreatedOn   string `json:"created_on"`
	Img         string `json:"img"`
}

// ProfileSerializer maps profiles to and from their external representation.
type ProfileSerializer struct {
	repo repository.ProfileRepository
}

// NewProfileSerializer returns a serializer backed by the given repository.
func NewProfileSerializer(repo repository.ProfileRepository) *ProfileSerializer {
	return &ProfileSerializer{repo: repo}
}

// Inbound validates and persists a new profile. The owning account is the
// authenticated caller; any caller-supplied userProfile value is ignored.
func (s *ProfileSerializer) Inbound(ctx context.Context, callerID uint, in ProfileIn) (*models.Profile, error) {
	if err := validateInbound(in); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		NickName:  in.NickName,
		AccountID: callerID,
	}
	if ProfileFields.Writable("img") {
		profile.Img = in.Img
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update validates and applies writable fields to an existing profile owned
// by the caller. Read-only fields (id, userProfile, created_on) are never
// touched.
func (s *ProfileSerializer) Update(ctx context.Context, callerID uint, in ProfileIn) (*models.Profile, error) {
	if err := validateInbound(in); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByAccountID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	profile.NickName = in.NickName
	if ProfileFields.Writable("img") && in.Img != "" {
		profile.Img = in.Img
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Outbound derives the external representation of a stored profile.
func (s *ProfileSerializer) Outbound(profile *models.Profile) ProfileRep {
	return ProfileRep{
		ID:          profile.ID,
		NickName:    profile.NickName,
		UserProfile: profile.AccountID,
		CreatedOn:   profile.CreatedOn.Format(dateLayout),
		Img:         profile.Img,
	}
}
