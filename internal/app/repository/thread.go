package repository

import (
	"medconsult/internal/app/ds"
)

func (r *Repository) CreateQuestion(q *ds.Question) error {
	return r.db.Create(q).Error
}

func (r *Repository) GetQuestionByID(id uint) (*ds.Question, error) {
	var q ds.Question
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &q, nil
}

func (r *Repository) ListQuestions(patientID *uint) ([]ds.Question, error) {
	var list []ds.Question
	q := r.db.Order("id DESC")
	if patientID != nil {
		q = q.Where("patient_id = ?", *patientID)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *Repository) SetQuestionAttachment(id uint, key string) error {
	return r.db.Model(&ds.Question{}).Where("id = ?", id).Update("attachment_key", key).Error
}

func (r *Repository) CreateAnswer(a *ds.Answer) error {
	return r.db.Create(a).Error
}

func (r *Repository) GetAnswerByID(id uint) (*ds.Answer, error) {
	var a ds.Answer
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &a, nil
}

func (r *Repository) ListAnswersByQuestion(questionID uint) ([]ds.Answer, error) {
	var list []ds.Answer
	err := r.db.Where("question_id = ?", questionID).Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) CreateComment(c *ds.Comment) error {
	return r.db.Create(c).Error
}

func (r *Repository) ListCommentsByQuestion(questionID uint) ([]ds.Comment, error) {
	var list []ds.Comment
	err := r.db.Where("question_id = ?", questionID).Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) ListCommentsByAnswer(answerID uint) ([]ds.Comment, error) {
	var list []ds.Comment
	err := r.db.Where("answer_id = ?", answerID).Order("id").Find(&list).Error
	return list, err
}
