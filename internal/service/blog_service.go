package service

import (
	"context"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/entity"
	"medinfo-be/internal/pkg/logger"
	"medinfo-be/internal/repository/unitofwork"
)

type IBlogService interface {
	List(ctx context.Context) (*dto.BlogPostsResponse, error)
	Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.CreateBlogPostResponse, error)
}

type blogService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewBlogService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IBlogService {
	return &blogService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *blogService) List(ctx context.Context) (*dto.BlogPostsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.BlogRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.BlogPostsResponse{Posts: make([]dto.BlogPostResponse, 0, len(posts))}
	for _, p := range posts {
		res.Posts = append(res.Posts, dto.BlogPostResponse{
			Id:      p.Id,
			Title:   p.Title,
			Content: p.Content,
		})
	}
	return res, nil
}

func (s *blogService) Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.CreateBlogPostResponse, error) {
	post := &entity.BlogPost{
		Title:   req.Title,
		Content: req.Content,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BlogRepository().Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("Blog", "Post created", map[string]interface{}{"id": post.Id})
	return &dto.CreateBlogPostResponse{Message: "Post created", Id: post.Id}, nil
}
