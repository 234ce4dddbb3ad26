package store

import (
	"context"

	"pergunu/internal/model"
)

// Collection names shared by the flat file and the document database.
const (
	ColUsers                = "users"
	ColNews                 = "news"
	ColSessions             = "sessions"
	ColApplications         = "applications"
	ColBeasiswa             = "beasiswa"
	ColBeasiswaApplications = "beasiswa_applications"
)

// Collections bundles the portal's collections over one backend pair.
type Collections struct {
	Users                *Collection[model.User]
	News                 *Collection[model.News]
	Sessions             *Collection[model.Session]
	Applications         *Collection[model.Application]
	Beasiswa             *Collection[model.Beasiswa]
	BeasiswaApplications *Collection[model.BeasiswaApplication]
}

// NewCollections wires every collection to the given backends.
func NewCollections(db *Mongo, file *FileStore) *Collections {
	return &Collections{
		Users: NewCollection(ColUsers, db, file,
			func(d *Document) []model.User { return d.Users },
			func(d *Document, v []model.User) { d.Users = v }),
		News: NewCollection(ColNews, db, file,
			func(d *Document) []model.News { return d.News },
			func(d *Document, v []model.News) { d.News = v }),
		Sessions: NewCollection(ColSessions, db, file,
			func(d *Document) []model.Session { return d.Sessions },
			func(d *Document, v []model.Session) { d.Sessions = v }),
		Applications: NewCollection(ColApplications, db, file,
			func(d *Document) []model.Application { return d.Applications },
			func(d *Document, v []model.Application) { d.Applications = v }),
		Beasiswa: NewCollection(ColBeasiswa, db, file,
			func(d *Document) []model.Beasiswa { return d.Beasiswa },
			func(d *Document, v []model.Beasiswa) { d.Beasiswa = v }),
		BeasiswaApplications: NewCollection(ColBeasiswaApplications, db, file,
			func(d *Document) []model.BeasiswaApplication { return d.BeasiswaApplications },
			func(d *Document, v []model.BeasiswaApplication) { d.BeasiswaApplications = v }),
	}
}

// Counts returns the record count per collection from whichever backend is
// live, keyed by collection name.
func (c *Collections) Counts(ctx context.Context) map[string]int {
	counts := map[string]int{}
	if users, err := c.Users.All(ctx); err == nil {
		counts[ColUsers] = len(users)
	}
	if news, err := c.News.All(ctx); err == nil {
		counts[ColNews] = len(news)
	}
	if beasiswa, err := c.Beasiswa.All(ctx); err == nil {
		counts[ColBeasiswa] = len(beasiswa)
	}
	if apps, err := c.Applications.All(ctx); err == nil {
		counts[ColApplications] = len(apps)
	}
	if apps, err := c.BeasiswaApplications.All(ctx); err == nil {
		counts[ColBeasiswaApplications] = len(apps)
	}
	return counts
}
