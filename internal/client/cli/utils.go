package cli

import "github.com/dmitrijs2005/trattoria/internal/client/models"

func newProfile(email, name, phone string) *models.Profile {
	return &models.Profile{Email: email, Name: name, Phone: phone}
}
