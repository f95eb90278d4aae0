// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [BusClient]: a namespace connection that opens subscription receivers
//   - [BatchReceiver]: bounded receive-and-delete batches from one queue
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// The Service Bus adapter (internal/adapters/servicebus) implements them
// with the azservicebus SDK; tests implement them with in-memory fakes.
//
// This separation enables:
//   - Testing the drain engine without a live namespace
//   - Swapping infrastructure without changing business logic
//   - Clear boundaries and dependency direction
package ports
