package mapper

import (
	"medinfo-be/internal/entity"
	"medinfo-be/internal/model"
)

type BlogMapper struct{}

func NewBlogMapper() *BlogMapper {
	return &BlogMapper{}
}

func (m *BlogMapper) ToEntity(p *model.BlogPost) *entity.BlogPost {
	if p == nil {
		return nil
	}
	return &entity.BlogPost{Id: p.Id, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt}
}

func (m *BlogMapper) ToModel(p *entity.BlogPost) *model.BlogPost {
	if p == nil {
		return nil
	}
	return &model.BlogPost{Id: p.Id, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt}
}

func (m *BlogMapper) ToEntities(posts []*model.BlogPost) []*entity.BlogPost {
	entities := make([]*entity.BlogPost, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
