package api

import (
	"time"

	"github.com/SinaFr/todolist-backend/internal/server/models"
)

// accountDTO is the wire representation of an account. The password field
// carries the plaintext on input (signup, login, update) and is always empty
// on output: the stored hash never leaves the server.
type accountDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func accountToDTO(account *models.Account) accountDTO {
	return accountDTO{
		ID:       account.ID,
		Name:     account.Name,
		Username: account.Username,
		Email:    account.Email,
		Password: "",
	}
}

func accountsToDTO(accounts []*models.Account) []accountDTO {
	dtos := make([]accountDTO, 0, len(accounts))
	for _, a := range accounts {
		dtos = append(dtos, accountToDTO(a))
	}
	return dtos
}

func (dto accountDTO) toModel() *models.Account {
	return &models.Account{
		Name:     dto.Name,
		Username: dto.Username,
		Email:    dto.Email,
	}
}

// taskDTO is the wire representation of a task. Priority travels as its
// numeric value. The owning account is not part of the DTO; it is derived
// from the creating principal.
type taskDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Priority        int       `json:"priority"`
	TerminationDate time.Time `json:"terminationDate"`
	IsDone          bool      `json:"isDone"`
}

func taskToDTO(task *models.Task) taskDTO {
	return taskDTO{
		ID:              task.ID,
		Name:            task.Name,
		Description:     task.Description,
		Priority:        int(task.Priority),
		TerminationDate: task.TerminationDate,
		IsDone:          task.IsDone,
	}
}

func tasksToDTO(tasks []*models.Task) []taskDTO {
	dtos := make([]taskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, taskToDTO(t))
	}
	return dtos
}

func (dto taskDTO) toModel() *models.Task {
	return &models.Task{
		Name:            dto.Name,
		Description:     dto.Description,
		Priority:        models.Priority(dto.Priority),
		TerminationDate: dto.TerminationDate,
		IsDone:          dto.IsDone,
	}
}
