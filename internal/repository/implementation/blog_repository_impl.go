package implementation

import (
	"context"
	"errors"

	"medinfo-be/internal/entity"
	"medinfo-be/internal/mapper"
	"medinfo-be/internal/model"
	"medinfo-be/internal/repository/contract"
	"medinfo-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BlogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BlogMapper
}

func NewBlogRepository(db *gorm.DB) contract.BlogRepository {
	return &BlogRepositoryImpl{
		db:     db,
		mapper: mapper.NewBlogMapper(),
	}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, post *entity.BlogPost) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *BlogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error) {
	var m model.BlogPost
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BlogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error) {
	var posts []*model.BlogPost
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(posts), nil
}
