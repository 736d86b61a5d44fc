package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	AuthProvider     *AuthProvider
	TemplateProvider *TemplateProvider
	ContactProvider  *ContactProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		AuthProvider:     NewAuthProvider(db),
		TemplateProvider: NewTemplateProvider(db),
		ContactProvider:  NewContactProvider(db),
	}
}
