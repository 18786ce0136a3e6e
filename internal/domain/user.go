package domain

type UserID int64

type User struct {
	ID             UserID
	Username       string
	Email          string
	Bio            string
	Location       string
	BirthDate      string
	ProfilePicture string
	IsFollowed     bool
}

// UserPatch is a shallow partial update: set fields overwrite, nil fields are kept.
type UserPatch struct {
	Username       *string
	Email          *string
	Bio            *string
	Location       *string
	BirthDate      *string
	ProfilePicture *string
	IsFollowed     *bool
}

func (p UserPatch) Apply(user User) User {
	if p.Username != nil {
		user.Username = *p.Username
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Bio != nil {
		user.Bio = *p.Bio
	}
	if p.Location != nil {
		user.Location = *p.Location
	}
	if p.BirthDate != nil {
		user.BirthDate = *p.BirthDate
	}
	if p.ProfilePicture != nil {
		user.ProfilePicture = *p.ProfilePicture
	}
	if p.IsFollowed != nil {
		user.IsFollowed = *p.IsFollowed
	}

	return user
}

// PatchFromUser builds a patch that overwrites every profile attribute with the
// server-returned record, so a cleared field stays cleared. The follow flag
// describes the viewer's relationship and is left alone.
func PatchFromUser(user User) UserPatch {
	return UserPatch{
		Username:       &user.Username,
		Email:          &user.Email,
		Bio:            &user.Bio,
		Location:       &user.Location,
		BirthDate:      &user.BirthDate,
		ProfilePicture: &user.ProfilePicture,
	}
}

type LoginCredentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type Registration struct {
	Username        string `validate:"required,max=150"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type ProfileUpdate struct {
	Bio       string
	Location  string
	BirthDate string `validate:"omitempty,datetime=2006-01-02"`
	Picture   *Upload
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Data     []byte
}
