package mapper

import (
	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/model"

	"gorm.io/datatypes"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(d.Metadata) > 0 {
		metadata = map[string]interface{}(d.Metadata)
	}

	return &entity.Document{
		Id:       d.Id,
		Subject:  entity.Subject(d.Subject),
		Filename: d.Filename,
		Content:  d.Content,
		Metadata: metadata,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var metadata datatypes.JSONMap
	if len(d.Metadata) > 0 {
		metadata = datatypes.JSONMap(d.Metadata)
	}

	return &model.Document{
		Id:       d.Id,
		Subject:  string(d.Subject),
		Filename: d.Filename,
		Content:  d.Content,
		Metadata: metadata,
	}
}

func (m *DocumentMapper) ToEntities(documents []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(documents))
	for i, d := range documents {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
