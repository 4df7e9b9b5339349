package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet"
	"github.com/m04kA/SMC-CarRentalService/internal/service/fleet/models"
	getAvailableCars "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_available_cars"
	rentCar "github.com/m04kA/SMC-CarRentalService/internal/usecase/rent_car"
)

const (
	roleAdmin  = "admin"
	roleRenter = "renter"
)

// Shell интерактивная сессия оператора: одна роль за раз, команды выполняются последовательно.
// Run завершается по команде Exit или по концу ввода; сохранение каталога выполняет вызывающий код
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	fleet     FleetService
	rentCar   RentCarUseCase
	available GetAvailableCarsUseCase
	logger    Logger
}

// NewShell создает сессию поверх потоков ввода/вывода
func NewShell(
	in io.Reader,
	out io.Writer,
	fleet FleetService,
	rentCar RentCarUseCase,
	available GetAvailableCarsUseCase,
	logger Logger,
) *Shell {
	return &Shell{
		in:        bufio.NewScanner(in),
		out:       out,
		fleet:     fleet,
		rentCar:   rentCar,
		available: available,
		logger:    logger,
	}
}

// Run выполняет сессию до команды Exit
func (s *Shell) Run(ctx context.Context) error {
	s.printf("=== Welcome to the Car Rental App ===\n")

	role, err := s.login()
	if err != nil {
		return s.endOfInput(err)
	}

	for {
		s.showMenu(role)

		choice, err := s.prompt("Select an option: ")
		if err != nil {
			return s.endOfInput(err)
		}

		if choice == "0" {
			if role, err = s.login(); err != nil {
				return s.endOfInput(err)
			}
			continue
		}

		exit, err := s.dispatch(ctx, role, choice)
		if err != nil {
			return s.endOfInput(err)
		}
		if exit {
			s.printf("Data saved. Exiting...\n")
			return nil
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, role, choice string) (bool, error) {
	switch {
	case choice == "1":
		return false, s.viewCars(ctx)
	case choice == "2":
		return false, s.checkAvailability(ctx)
	case role == roleAdmin && choice == "3":
		return false, s.createCar(ctx)
	case role == roleAdmin && choice == "4":
		return false, s.updateCar(ctx)
	case role == roleAdmin && choice == "5":
		return false, s.deleteCar(ctx)
	case role == roleAdmin && choice == "6":
		return true, nil
	case role == roleRenter && choice == "3":
		return false, s.rent(ctx)
	case role == roleRenter && choice == "4":
		return true, nil
	default:
		s.printf("Invalid choice.\n")
		return false, nil
	}
}

func (s *Shell) login() (string, error) {
	for {
		role, err := s.prompt("Login as 'admin' or 'renter': ")
		if err != nil {
			return "", err
		}
		role = strings.ToLower(role)
		if role == roleAdmin || role == roleRenter {
			return role, nil
		}
		s.printf("Invalid role. Please enter 'admin' or 'renter'.\n")
	}
}

func (s *Shell) showMenu(role string) {
	s.printf("\n=== Car Rental System ===\n")
	s.printf("Logged in as: %s\n", strings.ToUpper(role))
	s.printf("1. View Cars\n")
	s.printf("2. Check Car Availability by Date\n")
	if role == roleAdmin {
		s.printf("3. Add New Car\n")
		s.printf("4. Update Car\n")
		s.printf("5. Delete Car\n")
		s.printf("6. Exit\n")
	} else {
		s.printf("3. Rent a Car\n")
		s.printf("4. Exit\n")
	}
	s.printf("0. Change Role\n")
}

func (s *Shell) viewCars(ctx context.Context) error {
	list, err := s.fleet.List(ctx)
	if err != nil {
		s.reportInternal("view cars", err)
		return nil
	}

	s.printf("\n--- List of Cars ---\n")
	if list.Total == 0 {
		s.printf("No cars available.\n")
		return nil
	}

	for _, car := range list.Cars {
		reserved := strings.Join(car.ReservedDays, ", ")
		if reserved == "" {
			reserved = "None"
		}
		s.printf("ID: %d, Brand: %s, Model: %s, Year: %s, Rate: %d, Rented Dates: %s\n",
			car.ID, car.Brand, car.Model, car.Year, car.Rate, reserved)
	}
	return nil
}

func (s *Shell) checkAvailability(ctx context.Context) error {
	date, err := s.prompt("Enter date to check (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	resp, err := s.available.Execute(ctx, &getAvailableCars.Request{Date: date})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFormat) {
			s.printf("Invalid date format.\n")
			return nil
		}
		s.reportInternal("check availability", err)
		return nil
	}

	s.printf("\nAvailable cars on %s:\n", resp.Date)
	if len(resp.Cars) == 0 {
		s.printf("No cars available on this date.\n")
		return nil
	}
	for _, car := range resp.Cars {
		s.printf("- ID: %d, Brand: %s, Model: %s, Year: %s, Rate: %d\n", car.ID, car.Brand, car.Model, car.Year, car.Rate)
	}
	return nil
}

func (s *Shell) createCar(ctx context.Context) error {
	s.printf("\n--- Add New Car ---\n")

	var req models.CreateCarRequest
	var err error
	if req.Brand, err = s.prompt("Enter Car Brand: "); err != nil {
		return err
	}
	if req.Model, err = s.prompt("Enter Car Model: "); err != nil {
		return err
	}
	if req.Year, err = s.prompt("Enter Manufacture Year: "); err != nil {
		return err
	}

	rate, ok, err := s.promptInt("Enter Daily Rate: ")
	if err != nil || !ok {
		return err
	}
	req.Rate = rate

	car, err := s.fleet.Create(ctx, &req)
	if err != nil {
		if errors.Is(err, fleet.ErrInvalidInput) {
			s.printf("Invalid car data: %v\n", err)
			return nil
		}
		s.reportInternal("create car", err)
		return nil
	}

	s.printf("Car added with ID: %d\n", car.ID)
	return nil
}

func (s *Shell) updateCar(ctx context.Context) error {
	if err := s.viewCars(ctx); err != nil {
		return err
	}

	id, ok, err := s.promptInt("Enter Car ID to update: ")
	if err != nil || !ok {
		return err
	}

	current, err := s.fleet.GetByID(ctx, id)
	if err != nil {
		s.reportFleetError("update car", err)
		return nil
	}

	s.printf("Leave input blank to keep current value.\n")

	var req models.UpdateCarRequest
	brand, err := s.prompt(fmt.Sprintf("New Brand (current: %s): ", current.Brand))
	if err != nil {
		return err
	}
	model, err := s.prompt(fmt.Sprintf("New Model (current: %s): ", current.Model))
	if err != nil {
		return err
	}
	year, err := s.prompt(fmt.Sprintf("New Year (current: %s): ", current.Year))
	if err != nil {
		return err
	}
	rateText, err := s.prompt(fmt.Sprintf("New Daily Rate (current: %d): ", current.Rate))
	if err != nil {
		return err
	}

	req.Brand, req.Model, req.Year = &brand, &model, &year
	if rateText != "" {
		rate, err := strconv.ParseInt(rateText, 10, 64)
		if err != nil {
			s.printf("Invalid rate. Please enter a number.\n")
			return nil
		}
		req.Rate = &rate
	}

	if _, err := s.fleet.Update(ctx, id, &req); err != nil {
		s.reportFleetError("update car", err)
		return nil
	}

	s.printf("Car updated.\n")
	return nil
}

func (s *Shell) deleteCar(ctx context.Context) error {
	if err := s.viewCars(ctx); err != nil {
		return err
	}

	id, ok, err := s.promptInt("Enter Car ID to delete: ")
	if err != nil || !ok {
		return err
	}

	car, err := s.fleet.GetByID(ctx, id)
	if err == nil {
		err = s.fleet.Delete(ctx, id)
	}
	if err != nil {
		s.reportFleetError("delete car", err)
		return nil
	}

	s.printf("Car '%s' deleted.\n", car.Model)
	return nil
}

func (s *Shell) rent(ctx context.Context) error {
	if err := s.viewCars(ctx); err != nil {
		return err
	}

	id, ok, err := s.promptInt("Enter Car ID to rent: ")
	if err != nil || !ok {
		return err
	}

	start, err := s.prompt("Enter start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := s.prompt("Enter end date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	resp, err := s.rentCar.Execute(ctx, &rentCar.Request{CarID: id, StartDate: start, EndDate: end}, &promptPayer{shell: s})
	result := rentCar.ToResult(resp, err)

	switch result.ErrorKind {
	case rentCar.KindNone:
		s.printf("Car rented for %s..%s (%d day(s)). Total: %d, change: %d. Reference: %s\n",
			resp.StartDate, resp.EndDate, result.DaysBooked, result.TotalCost, result.Change, result.Reference)
	case rentCar.KindCarNotFound:
		s.printf("Car ID not found.\n")
	case rentCar.KindInvalidDateFormat:
		s.printf("Invalid date format.\n")
	case rentCar.KindInvalidRange:
		s.printf("End date cannot be before start date.\n")
	case rentCar.KindPastStartDate:
		s.printf("Cannot rent a car for past dates.\n")
	case rentCar.KindRentalTooLong:
		s.printf("Rental period is too long.\n")
	case rentCar.KindCostOverflow:
		s.printf("Rental cost is too large.\n")
	case rentCar.KindDateConflict:
		s.printf("Car is already rented on %s.\n", result.ConflictDate)
	case rentCar.KindPaymentDeclined:
		s.printf("Rental cancelled.\n")
	case rentCar.KindPaymentCancelled:
		s.printf("Payment cancelled. Rental not booked.\n")
	case rentCar.KindInsufficientPayment:
		s.printf("Insufficient payment: %d short of %d. Rental not booked.\n", result.Shortfall, result.TotalCost)
	default:
		s.reportInternal("rent car", err)
	}
	return nil
}

// prompt печатает приглашение и читает одну строку без пробелов по краям
func (s *Shell) prompt(text string) (string, error) {
	s.printf("%s", text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptInt читает целое число. ok=false - ввод не число, сообщение уже выведено
func (s *Shell) promptInt(text string) (int64, bool, error) {
	answer, err := s.prompt(text)
	if err != nil {
		return 0, false, err
	}
	value, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		s.printf("Invalid input. Please enter a number.\n")
		return 0, false, nil
	}
	return value, true, nil
}

func (s *Shell) reportFleetError(op string, err error) {
	switch {
	case errors.Is(err, fleet.ErrCarNotFound):
		s.printf("Car ID not found.\n")
	case errors.Is(err, fleet.ErrInvalidInput):
		s.printf("Invalid car data: %v\n", err)
	default:
		s.reportInternal(op, err)
	}
}

func (s *Shell) reportInternal(op string, err error) {
	s.logger.Error("CLI: %s failed: %v", op, err)
	s.printf("Something went wrong, please try again.\n")
}

// endOfInput завершает сессию по концу ввода как обычный выход
func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Warn("CLI: input closed, ending session")
		return nil
	}
	return err
}

func (s *Shell) printf(format string, v ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, v...)
}
