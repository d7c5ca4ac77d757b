package service

import (
	"context"

	"jobtrail/internal/model"
	"jobtrail/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the Mongo index and filter semantics.

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Name == user.Name || u.Email == user.Email || u.AccessToken == user.AccessToken {
			return repository.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Name == name {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByAccessToken(_ context.Context, token string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].AccessToken == token {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

type fakePostingRepo struct {
	postings map[primitive.ObjectID]model.Posting
}

func newFakePostingRepo() *fakePostingRepo {
	return &fakePostingRepo{postings: make(map[primitive.ObjectID]model.Posting)}
}

func (r *fakePostingRepo) Create(_ context.Context, p *model.Posting) error {
	p.ID = primitive.NewObjectID()
	r.postings[p.ID] = *p
	return nil
}

func (r *fakePostingRepo) FindByIDAndOwner(_ context.Context, id primitive.ObjectID, owner string) (*model.Posting, error) {
	p, ok := r.postings[id]
	if !ok || p.UserName != owner {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePostingRepo) FindByOwner(_ context.Context, owner string) ([]model.Posting, error) {
	out := []model.Posting{}
	for _, p := range r.postings {
		if p.UserName == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostingRepo) Replace(_ context.Context, p *model.Posting) error {
	stored, ok := r.postings[p.ID]
	if !ok || stored.UserName != p.UserName {
		return repository.ErrNotFound
	}
	r.postings[p.ID] = *p
	return nil
}

func (r *fakePostingRepo) Delete(_ context.Context, id primitive.ObjectID, owner string) error {
	p, ok := r.postings[id]
	if !ok || p.UserName != owner {
		return repository.ErrNotFound
	}
	delete(r.postings, id)
	return nil
}

type fakeContactRepo struct {
	contacts map[primitive.ObjectID]model.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[primitive.ObjectID]model.Contact)}
}

func (r *fakeContactRepo) Create(_ context.Context, c *model.Contact) error {
	c.ID = primitive.NewObjectID()
	r.contacts[c.ID] = *c
	return nil
}

func (r *fakeContactRepo) FindByIDAndOwner(_ context.Context, id primitive.ObjectID, owner string) (*model.Contact, error) {
	c, ok := r.contacts[id]
	if !ok || c.UserName != owner {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeContactRepo) FindByOwner(_ context.Context, owner string) ([]model.Contact, error) {
	out := []model.Contact{}
	for _, c := range r.contacts {
		if c.UserName == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) Replace(_ context.Context, c *model.Contact) error {
	stored, ok := r.contacts[c.ID]
	if !ok || stored.UserName != c.UserName {
		return repository.ErrNotFound
	}
	r.contacts[c.ID] = *c
	return nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id primitive.ObjectID, owner string) error {
	c, ok := r.contacts[id]
	if !ok || c.UserName != owner {
		return repository.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}
