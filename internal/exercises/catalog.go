package exercises

// catalog is the built-in exercise library, grouped by muscle group.
var catalog = []Item{
	// chest
	{ID: "chest-1", Name: "Barbell Bench Press", MuscleGroup: MuscleGroupChest, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "chest-2", Name: "Incline Barbell Bench Press", MuscleGroup: MuscleGroupChest, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "chest-3", Name: "Dumbbell Bench Press", MuscleGroup: MuscleGroupChest, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "chest-4", Name: "Incline Dumbbell Press", MuscleGroup: MuscleGroupChest, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "chest-5", Name: "Dumbbell Flyes", MuscleGroup: MuscleGroupChest, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "chest-6", Name: "Cable Flyes", MuscleGroup: MuscleGroupChest, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},
	{ID: "chest-7", Name: "Push-ups", MuscleGroup: MuscleGroupChest, Equipment: EquipmentBodyweight, Difficulty: DifficultyBeginner},
	{ID: "chest-8", Name: "Chest Dips", MuscleGroup: MuscleGroupChest, Equipment: EquipmentBodyweight, Difficulty: DifficultyIntermediate},

	// back
	{ID: "back-1", Name: "Deadlift", MuscleGroup: MuscleGroupBack, Equipment: EquipmentBarbell, Difficulty: DifficultyAdvanced},
	{ID: "back-2", Name: "Barbell Rows", MuscleGroup: MuscleGroupBack, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "back-3", Name: "Pull-ups", MuscleGroup: MuscleGroupBack, Equipment: EquipmentBodyweight, Difficulty: DifficultyIntermediate},
	{ID: "back-4", Name: "Chin-ups", MuscleGroup: MuscleGroupBack, Equipment: EquipmentBodyweight, Difficulty: DifficultyIntermediate},
	{ID: "back-5", Name: "Lat Pulldown", MuscleGroup: MuscleGroupBack, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},
	{ID: "back-6", Name: "Seated Cable Rows", MuscleGroup: MuscleGroupBack, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},
	{ID: "back-7", Name: "T-Bar Rows", MuscleGroup: MuscleGroupBack, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "back-8", Name: "Face Pulls", MuscleGroup: MuscleGroupBack, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},
	{ID: "back-9", Name: "Dumbbell Rows", MuscleGroup: MuscleGroupBack, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},

	// legs
	{ID: "legs-1", Name: "Barbell Squat", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "legs-2", Name: "Front Squat", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentBarbell, Difficulty: DifficultyAdvanced},
	{ID: "legs-3", Name: "Romanian Deadlift", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "legs-4", Name: "Leg Press", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentMachine, Difficulty: DifficultyBeginner},
	{ID: "legs-5", Name: "Leg Curls", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentMachine, Difficulty: DifficultyBeginner},
	{ID: "legs-6", Name: "Leg Extensions", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentMachine, Difficulty: DifficultyBeginner},
	{ID: "legs-7", Name: "Bulgarian Split Squat", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentDumbbell, Difficulty: DifficultyIntermediate},
	{ID: "legs-8", Name: "Walking Lunges", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "legs-9", Name: "Calf Raises", MuscleGroup: MuscleGroupLegs, Equipment: EquipmentMachine, Difficulty: DifficultyBeginner},

	// shoulders
	{ID: "shoulders-1", Name: "Overhead Press", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "shoulders-2", Name: "Dumbbell Shoulder Press", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "shoulders-3", Name: "Lateral Raises", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "shoulders-4", Name: "Front Raises", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "shoulders-5", Name: "Rear Delt Flyes", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "shoulders-6", Name: "Arnold Press", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentDumbbell, Difficulty: DifficultyIntermediate},
	{ID: "shoulders-7", Name: "Cable Lateral Raises", MuscleGroup: MuscleGroupShoulders, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},

	// arms
	{ID: "arms-1", Name: "Barbell Curl", MuscleGroup: MuscleGroupArms, Equipment: EquipmentBarbell, Difficulty: DifficultyBeginner},
	{ID: "arms-2", Name: "Dumbbell Curl", MuscleGroup: MuscleGroupArms, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "arms-3", Name: "Hammer Curls", MuscleGroup: MuscleGroupArms, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "arms-4", Name: "Preacher Curls", MuscleGroup: MuscleGroupArms, Equipment: EquipmentMachine, Difficulty: DifficultyBeginner},
	{ID: "arms-5", Name: "Tricep Pushdowns", MuscleGroup: MuscleGroupArms, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},
	{ID: "arms-6", Name: "Skull Crushers", MuscleGroup: MuscleGroupArms, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},
	{ID: "arms-7", Name: "Overhead Tricep Extension", MuscleGroup: MuscleGroupArms, Equipment: EquipmentDumbbell, Difficulty: DifficultyBeginner},
	{ID: "arms-8", Name: "Dips", MuscleGroup: MuscleGroupArms, Equipment: EquipmentBodyweight, Difficulty: DifficultyIntermediate},
	{ID: "arms-9", Name: "Close-Grip Bench Press", MuscleGroup: MuscleGroupArms, Equipment: EquipmentBarbell, Difficulty: DifficultyIntermediate},

	// core
	{ID: "core-1", Name: "Planks", MuscleGroup: MuscleGroupCore, Equipment: EquipmentBodyweight, Difficulty: DifficultyBeginner},
	{ID: "core-2", Name: "Crunches", MuscleGroup: MuscleGroupCore, Equipment: EquipmentBodyweight, Difficulty: DifficultyBeginner},
	{ID: "core-3", Name: "Cable Crunches", MuscleGroup: MuscleGroupCore, Equipment: EquipmentCable, Difficulty: DifficultyBeginner},
	{ID: "core-4", Name: "Hanging Leg Raises", MuscleGroup: MuscleGroupCore, Equipment: EquipmentBodyweight, Difficulty: DifficultyIntermediate},
	{ID: "core-5", Name: "Russian Twists", MuscleGroup: MuscleGroupCore, Equipment: EquipmentBodyweight, Difficulty: DifficultyBeginner},
	{ID: "core-6", Name: "Ab Wheel Rollouts", MuscleGroup: MuscleGroupCore, Equipment: EquipmentOther, Difficulty: DifficultyAdvanced},
}
