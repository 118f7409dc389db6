package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// GetVideosIndexMapping 返回 videos 索引的 mapping
func GetVideosIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"owner_id": {"type": "long"},
				"owner_name": {"type": "keyword"},
				"title": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
				},
				"description": {"type": "text"},
				"is_published": {"type": "boolean"},
				"view_count": {"type": "long"},
				"duration": {"type": "float"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
				"updated_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// VideosIndexName 返回配置的 videos 索引名
func VideosIndexName() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["videos"]; name != "" {
		return name
	}
	return "videos"
}

// InitIndexes 创建缺失的索引
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexName := VideosIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index %s: %w", indexName, err)
	}
	if exists {
		return nil
	}

	resp, err := IndicesCreate(ctx, indexName, strings.NewReader(GetVideosIndexMapping()))
	if err != nil {
		return fmt.Errorf("create index %s: %w", indexName, err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index %s failed: %s", indexName, resp.String())
	}

	logger.Info("Elasticsearch index created", zap.String("index", indexName))
	return nil
}
