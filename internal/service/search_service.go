package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vidtube/internal/api/dto"
	infraES "vidtube/internal/infra/elasticsearch"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	videoRepo *repository.VideoRepository
}

func NewSearchService(videoRepo *repository.VideoRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo}
}

// SearchVideos 搜索已发布视频，ES 优先，失败时降级到数据库模糊查询
func (s *SearchService) SearchVideos(req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 10
	}

	data, err := s.searchFromES(req)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		return s.searchFromDB(req)
	}
	return data, nil
}

func (s *SearchService) searchFromES(req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	queryJSON, err := json.Marshal(s.buildESQuery(req))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, infraES.VideosIndexName(), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	videoIDs := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		videoIDs = append(videoIDs, h.Source.ID)
	}

	total := esResp.Hits.Total.Value
	if len(videoIDs) == 0 {
		return s.buildSearchData(nil, total, req.Page, req.PageSize), nil
	}

	videos, err := s.videoRepo.GetByIDs(videoIDs)
	if err != nil {
		return nil, err
	}

	// 按 ES 相关度顺序重排，索引中残留的已删除视频直接跳过
	videoByID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoByID[videos[i].ID] = &videos[i]
	}

	ordered := make([]model.Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		if v, ok := videoByID[id]; ok {
			ordered = append(ordered, *v)
		}
	}

	return s.buildSearchData(ordered, total, req.Page, req.PageSize), nil
}

func (s *SearchService) searchFromDB(req *dto.SearchVideoRequest) (*dto.SearchVideoData, error) {
	skip := (req.Page - 1) * req.PageSize
	videos, total, err := s.videoRepo.SearchByKeyword(strings.TrimSpace(req.Q), skip, req.PageSize)
	if err != nil {
		return nil, err
	}
	return s.buildSearchData(videos, total, req.Page, req.PageSize), nil
}

func (s *SearchService) buildESQuery(req *dto.SearchVideoRequest) map[string]interface{} {
	boolQ := map[string]interface{}{
		"filter": []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"is_published": true}},
		},
		"must": []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":    strings.TrimSpace(req.Q),
					"fields":   []string{"title^3", "description^1"},
					"type":     "best_fields",
					"operator": "or",
				},
			},
		},
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQ,
		},
		"_source": []string{"id"},
		"from":    (req.Page - 1) * req.PageSize,
		"size":    req.PageSize,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"created_at": map[string]string{"order": "desc"}},
		},
	}
}

func (s *SearchService) buildSearchData(videos []model.Video, total int64, page, pageSize int) *dto.SearchVideoData {
	items := make([]dto.SearchVideoInfo, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		ownerName := ""
		if v.Owner.ID != 0 {
			ownerName = v.Owner.UserName
		}
		items = append(items, dto.SearchVideoInfo{
			ID:           v.ID,
			OwnerID:      v.OwnerID,
			OwnerName:    ownerName,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			ViewCount:    v.ViewCount,
		})
	}

	return &dto.SearchVideoData{
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}
}
