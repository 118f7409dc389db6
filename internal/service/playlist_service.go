package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	// ErrPlaylistNotFound 播放列表不存在
	ErrPlaylistNotFound = errors.New("播放列表不存在")
	// ErrVideoAlreadyInPlaylist 重复添加同一视频
	ErrVideoAlreadyInPlaylist = errors.New("视频已在播放列表中")
	// ErrVideoNotInPlaylist 移除的视频不在列表中
	ErrVideoNotInPlaylist = errors.New("视频不在播放列表中")
)

type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	videoRepo    *repository.VideoRepository
	userRepo     *repository.UserRepository
}

func NewPlaylistService(
	playlistRepo *repository.PlaylistRepository,
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, videoRepo: videoRepo, userRepo: userRepo}
}

// Create 创建播放列表
func (s *PlaylistService) Create(userID int64, req *dto.PlaylistCreateRequest) (*dto.PlaylistInfo, error) {
	name, err := trimContent(req.Name)
	if err != nil {
		return nil, err
	}

	playlist := &model.Playlist{
		OwnerID:     userID,
		Name:        name,
		Description: req.Description,
	}
	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}
	return s.toPlaylistInfo(playlist)
}

// GetByID 获取播放列表详情，视频按加入顺序分页返回。
// 引用的已删除视频被静默跳过，不产生空位。
func (s *PlaylistService) GetByID(playlistID int64, page, pageSize int) (*dto.PlaylistDetailData, error) {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	skip := (page - 1) * pageSize
	refs, _, err := s.playlistRepo.ListVideoRefs(playlistID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	// 总数只计仍然存在的视频，和页面内容保持一致
	total, err := s.playlistRepo.CountVideos(playlistID)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]int64, 0, len(refs))
	for i := range refs {
		videoIDs = append(videoIDs, refs[i].VideoID)
	}

	videos, err := s.videoRepo.GetByIDs(videoIDs)
	if err != nil {
		return nil, err
	}

	// 批量查询不保证顺序，按引用顺序重排，查不到的视频直接跳过
	videoByID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoByID[videos[i].ID] = &videos[i]
	}

	items := make([]dto.VideoInfo, 0, len(refs))
	for i := range refs {
		video, ok := videoByID[refs[i].VideoID]
		if !ok {
			continue
		}
		items = append(items, *toVideoInfo(video))
	}

	info, err := s.toPlaylistInfo(playlist)
	if err != nil {
		return nil, err
	}

	return &dto.PlaylistDetailData{
		Playlist:   *info,
		Videos:     items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Update 更新播放列表名称/描述，仅拥有者可操作
func (s *PlaylistService) Update(userID, playlistID int64, req *dto.PlaylistUpdateRequest) (*dto.PlaylistInfo, error) {
	if _, err := s.getOwned(userID, playlistID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name, err := trimContent(*req.Name)
		if err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	updated, err := s.playlistRepo.Update(playlistID, updates)
	if err != nil {
		return nil, err
	}
	return s.toPlaylistInfo(updated)
}

// Delete 删除播放列表及其视频引用，仅拥有者可操作
func (s *PlaylistService) Delete(userID, playlistID int64) error {
	if _, err := s.getOwned(userID, playlistID); err != nil {
		return err
	}
	return s.playlistRepo.Delete(playlistID)
}

// AddVideo 在列表末尾追加视频，重复添加报错
func (s *PlaylistService) AddVideo(userID, playlistID, videoID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.getOwned(userID, playlistID)
	if err != nil {
		return nil, err
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	added, err := s.playlistRepo.AddVideo(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, ErrVideoAlreadyInPlaylist
	}
	return s.toPlaylistInfo(playlist)
}

// RemoveVideo 从列表中移除视频引用，仅拥有者可操作
func (s *PlaylistService) RemoveVideo(userID, playlistID, videoID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.getOwned(userID, playlistID)
	if err != nil {
		return nil, err
	}

	removed, err := s.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrVideoNotInPlaylist
	}
	return s.toPlaylistInfo(playlist)
}

// ListByUser 分页查询用户的播放列表
func (s *PlaylistService) ListByUser(ownerID int64, page, pageSize int) (*dto.PlaylistListData, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	skip := (page - 1) * pageSize
	playlists, total, err := s.playlistRepo.ListByOwner(ownerID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		info, err := s.toPlaylistInfo(&playlists[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *info)
	}

	return &dto.PlaylistListData{
		Playlists:  items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// getOwned 查询播放列表并做归属校验，先判存在再判归属
func (s *PlaylistService) getOwned(userID, playlistID int64) (*model.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	if err := assertOwner(playlist.OwnerID, userID); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) toPlaylistInfo(playlist *model.Playlist) (*dto.PlaylistInfo, error) {
	count, err := s.playlistRepo.CountVideos(playlist.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PlaylistInfo{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		VideoCount:  count,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}, nil
}
