package media

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"vidtube/internal/config"
	infraMinio "vidtube/internal/infra/minio"
	"vidtube/pkg/logger"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// UploadResult 上传结果
type UploadResult struct {
	URL      string
	Duration float64 // 秒，仅视频文件有值
}

// Store 媒体存储接口：上传本地文件、按公开 URL 删除
type Store interface {
	UploadVideo(ctx context.Context, localPath string) (*UploadResult, error)
	UploadThumbnail(ctx context.Context, localPath string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

// MinioStore 基于 MinIO 的媒体存储实现
type MinioStore struct {
	endpoint        string
	useSSL          bool
	videoBucket     string
	thumbnailBucket string
}

// NewMinioStore 根据配置构建 MinIO 媒体存储
func NewMinioStore(minioCfg *config.MinIOConfig, mediaCfg *config.MediaConfig) *MinioStore {
	return &MinioStore{
		endpoint:        minioCfg.Endpoint,
		useSSL:          minioCfg.UseSSL,
		videoBucket:     mediaCfg.VideoBucket,
		thumbnailBucket: mediaCfg.ThumbnailBucket,
	}
}

// UploadVideo 上传视频文件并探测时长，成功后删除本地文件
func (s *MinioStore) UploadVideo(ctx context.Context, localPath string) (*UploadResult, error) {
	duration, err := probeDuration(localPath)
	if err != nil {
		// 时长探测失败不阻塞上传
		logger.Warn("Probe video duration failed", zap.String("path", localPath), zap.Error(err))
		duration = 0
	}

	url, err := s.upload(ctx, s.videoBucket, localPath)
	if err != nil {
		return nil, err
	}

	return &UploadResult{URL: url, Duration: duration}, nil
}

// UploadThumbnail 上传封面图片，成功后删除本地文件
func (s *MinioStore) UploadThumbnail(ctx context.Context, localPath string) (string, error) {
	return s.upload(ctx, s.thumbnailBucket, localPath)
}

// Delete 按公开 URL 删除对象
func (s *MinioStore) Delete(ctx context.Context, publicURL string) error {
	bucket, objectName, err := s.parsePublicURL(publicURL)
	if err != nil {
		return err
	}
	return infraMinio.RemoveFile(ctx, bucket, objectName)
}

func (s *MinioStore) upload(ctx context.Context, bucket, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open local file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat local file: %w", err)
	}

	ext := filepath.Ext(localPath)
	objectName := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := infraMinio.UploadFile(ctx, bucket, objectName, f, stat.Size(), contentType); err != nil {
		return "", err
	}

	// 上传成功后清理本地临时文件
	if err := os.Remove(localPath); err != nil {
		logger.Warn("Remove local temp file failed", zap.String("path", localPath), zap.Error(err))
	}

	return infraMinio.GetPublicURL(s.endpoint, s.useSSL, bucket, objectName), nil
}

// parsePublicURL 从公开 URL 中解析出 bucket 和对象名
func (s *MinioStore) parsePublicURL(publicURL string) (string, string, error) {
	trimmed := publicURL
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimPrefix(trimmed, s.endpoint)
	trimmed = strings.TrimPrefix(trimmed, "/")

	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid media url: %s", publicURL)
	}
	return parts[0], parts[1], nil
}

// probeDuration 使用 ffprobe 获取视频时长（秒）
func probeDuration(localPath string) (float64, error) {
	out, err := ffmpeg.Probe(localPath)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	if probe.Format.Duration == "" {
		return 0, nil
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}
