package create_booking

import "time"

// Request модель запроса на создание записи
type Request struct {
	StudentName string // Полное имя студента
	Course      string // Название курса из каталога
	Date        string // Дата из каталога (например, "August 11, 2025")
	Time        string // Время из каталога (например, "8:00 AM")
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	StudentName string
	Course      string
	Date        string
	Time        string
	CreatedAt   time.Time

	SlotAvailable   int  // Свободных мест в слоте после записи
	CourseAvailable int  // Свободных мест на курсе после записи
	DateFullyBooked bool // Дата полностью занята после этой записи
}
