package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errNothingToUpdate = errors.New("nothing to update: set at least one of --bio, --location, --birth-date, --picture")

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit your developer profile",
	}

	cmd.AddCommand(newProfileUpdateCmd(app))
	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var update domain.ProfileUpdate
	var picturePath string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update bio, location, birth date or profile picture",
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			if picturePath != "" {
				upload, err := readUpload(picturePath)
				if err != nil {
					return err
				}
				update.Picture = &upload
			}
			if update.Bio == "" && update.Location == "" && update.BirthDate == "" && update.Picture == nil {
				return errNothingToUpdate
			}

			if _, err := app.session.Resume(cmd.Context(), app.client); err != nil {
				return fmt.Errorf("update profile: %w", err)
			}

			if _, err := app.directory.UpdateProfile(cmd.Context(), update); err != nil {
				return err
			}

			return writeDocument(cmd, app, social.Whoami{Session: app.session.Session(), Profile: app.settings.Credentials.Profile})
		}),
	}

	cmd.Flags().StringVar(&update.Bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&update.Location, "location", "", "Location")
	cmd.Flags().StringVar(&update.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&picturePath, "picture", "", "Path to a profile picture")

	return cmd
}
