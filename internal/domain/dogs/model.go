package dogs

// Dog es el único registro que maneja el registry.
// No hay update: un Dog existe tal como se creó o no existe.
type Dog struct {
	ID    string
	Name  string
	Breed string
}

// seedDogs son los perros que se insertan cuando la tabla está vacía al iniciar.
// El orden importa: se insertan en este orden.
var seedDogs = []struct {
	Name  string
	Breed string
}{
	{Name: "Comet", Breed: "Whippet"},
	{Name: "Oscar", Breed: "German Shorthaired Pointer"},
}
