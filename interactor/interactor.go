// Package interactor contains the concrete use cases of the media device domain.
//
// Every use case here is a usecase.UseCase: a stateless operation body holding only its
// repository, meant to be run by a usecase.Executor.
package interactor
